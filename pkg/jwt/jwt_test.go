package jwt_test

import (
	"time"

	tokenIssuer "tokenrelay/pkg/jwt"

	"github.com/golang-jwt/jwt"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("JWTService", func() {
	var (
		service *tokenIssuer.JWTService
		info    tokenIssuer.TokenInfo
		signed  string
	)

	BeforeEach(func() {
		service = tokenIssuer.NewJWTService([]byte("secret"))
		info = tokenIssuer.TokenInfo{
			UserName:   "alice",
			Subject:    "user-1",
			Use:        tokenIssuer.UseID,
			Expiration: time.Hour,
		}
	})

	JustBeforeEach(func() {
		var err error
		signed, err = service.Sign(service.Generate(info))
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		tokenIssuer.TimeNow = time.Now
	})

	Describe("Validate", func() {
		It("should return the claims", func() {
			claims, err := service.Validate(signed)
			Expect(err).NotTo(HaveOccurred())
			Expect(claims).To(HaveKeyWithValue("sub", "user-1"))
			Expect(claims).To(HaveKeyWithValue("token_use", "id"))
		})

		It("should reject a token signed with another secret", func() {
			other := tokenIssuer.NewJWTService([]byte("other"))
			_, err := other.Validate(signed)
			Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
		})

		It("should reject a token using another signing method", func() {
			token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "user-1"})
			raw, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
			Expect(err).NotTo(HaveOccurred())

			_, err = service.Validate(raw)
			Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
		})
	})

	Describe("Subject", func() {
		It("should return the subject for the expected use", func() {
			sub, err := service.Subject(signed, tokenIssuer.UseID)
			Expect(err).NotTo(HaveOccurred())
			Expect(sub).To(Equal("user-1"))
		})

		It("should reject a token of another use", func() {
			_, err := service.Subject(signed, tokenIssuer.UseAccess)
			Expect(err).To(MatchError(tokenIssuer.ErrWrongTokenUse))
		})

		When("the subject is missing", func() {
			BeforeEach(func() {
				info.Subject = ""
			})

			It("should reject the token", func() {
				_, err := service.Subject(signed, tokenIssuer.UseID)
				Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
			})
		})
	})
})
