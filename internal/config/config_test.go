package config_test

import (
	"os"
	"time"

	"tokenrelay/internal/config"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("NewApp", func() {
	setenv := func(key, value string) {
		previous, ok := os.LookupEnv(key)
		Expect(os.Setenv(key, value)).To(Succeed())
		DeferCleanup(func() {
			if ok {
				os.Setenv(key, previous)
				return
			}
			os.Unsetenv(key)
		})
	}

	BeforeEach(func() {
		setenv("API_PORT", "8080")
		setenv("DB_CONNECTION_URL", "postgres://localhost/relay")
		setenv("JWT_SECRET", "secret")
		setenv("PRIVATE_CHAIN_EXECUTE_API_HOST", "chain.example.com")
		setenv("PRIVATE_CHAIN_AWS_ACCESS_KEY", "AKID")
		setenv("PRIVATE_CHAIN_AWS_SECRET_ACCESS_KEY", "SECRET")
		setenv("PRIVATE_CHAIN_BRIDGE_ADDRESS", "0x1234567890123456789012345678901234567890")
		setenv("PRIVATE_CHAIN_TOKEN_ADDRESS", "0xabcdefabcdefabcdefabcdefabcdefabcdefabcd")
		setenv("PRIVATE_CHAIN_ID", "1001")
	})

	It("should apply defaults", func() {
		app, err := config.NewApp()
		Expect(err).NotTo(HaveOccurred())

		Expect(app.Port).To(Equal("8080"))
		Expect(app.PrivateChain.ChainID).To(Equal(int64(1001)))
		Expect(app.PrivateChain.AWSRegion).To(Equal("ap-northeast-1"))
		Expect(app.ReceiptRetryCount).To(Equal(3))
		Expect(app.ReceiptRetryInterval).To(Equal(time.Second))
		Expect(app.ReconcileInterval).To(Equal(time.Minute))
		Expect(app.Kafka.Brokers).To(BeEmpty())
		Expect(app.Kafka.Topic).To(Equal("token-send-events"))
		Expect(app.LogLevel).To(Equal("info"))
		Expect(app.DailyLimit.String()).To(Equal("1000000000000000000000000"))
		Expect(app.SendValueMin.String()).To(Equal("1"))
		Expect(app.TipValueMax.String()).To(Equal("1000000000000000000000000"))
	})

	It("should read overrides", func() {
		setenv("KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")
		setenv("DAILY_LIMIT_TOKEN_SEND_VALUE", "100")
		setenv("RECEIPT_RETRY_INTERVAL", "250ms")

		app, err := config.NewApp()
		Expect(err).NotTo(HaveOccurred())
		Expect(app.Kafka.Brokers).To(Equal([]string{"kafka-1:9092", "kafka-2:9092"}))
		Expect(app.DailyLimit.String()).To(Equal("100"))
		Expect(app.ReceiptRetryInterval).To(Equal(250 * time.Millisecond))
	})

	It("should fail without a required variable", func() {
		Expect(os.Unsetenv("PRIVATE_CHAIN_BRIDGE_ADDRESS")).To(Succeed())

		_, err := config.NewApp()
		Expect(err).To(MatchError(ContainSubstring("PRIVATE_CHAIN_BRIDGE_ADDRESS")))
	})

	It("should reject a malformed amount", func() {
		setenv("TOKEN_SEND_VALUE_MAX", "1e24")

		_, err := config.NewApp()
		Expect(err).To(MatchError(ContainSubstring("TOKEN_SEND_VALUE_MAX")))
	})
})
