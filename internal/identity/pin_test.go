package identity_test

import (
	"context"
	"errors"
	"time"

	"tokenrelay/internal/identity"
	"tokenrelay/internal/identity/fake"
	"tokenrelay/internal/repository"
	tokenIssuer "tokenrelay/pkg/jwt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var _ = Describe("PinVerifier", func() {
	var (
		fakeTokens *fake.TokenValidator
		fakeUsers  *fake.UserStore
		verifier   *identity.PinVerifier
		ctx        context.Context
		user       repository.User
		pin        string
		err        error
	)

	BeforeEach(func() {
		fakeTokens = new(fake.TokenValidator)
		fakeUsers = new(fake.UserStore)
		ctx = context.Background()

		hash, hashErr := bcrypt.GenerateFromPassword([]byte("1234"), bcrypt.MinCost)
		Expect(hashErr).NotTo(HaveOccurred())
		expires := time.Now().Add(time.Hour)
		user = repository.User{ID: "user-1", Username: "alice", PinHash: string(hash), PinExpiresAt: &expires}
		pin = "1234"

		fakeTokens.SubjectReturns("user-1", nil)
		fakeUsers.GetUserStub = func(context.Context, string) (repository.User, error) {
			return user, nil
		}

		verifier = identity.NewPinVerifier(zap.NewNop().Sugar(), fakeTokens, fakeUsers, identity.LimitConfig{
			Burst:    2,
			Interval: time.Hour,
		})
	})

	JustBeforeEach(func() {
		err = verifier.VerifyPin(ctx, "user-1", "access-token", pin)
	})

	When("the pin matches", func() {
		It("should succeed", func() {
			Expect(err).NotTo(HaveOccurred())
		})

		It("should validate an access token", func() {
			token, use := fakeTokens.SubjectArgsForCall(0)
			Expect(token).To(Equal("access-token"))
			Expect(use).To(Equal(tokenIssuer.UseAccess))
		})
	})

	When("the pin does not match", func() {
		BeforeEach(func() {
			pin = "0000"
		})

		It("should return ErrInvalidPinCode", func() {
			Expect(err).To(Equal(identity.ErrInvalidPinCode))
		})
	})

	When("the pin has expired", func() {
		BeforeEach(func() {
			expired := time.Now().Add(-time.Minute)
			user.PinExpiresAt = &expired
		})

		It("should return ErrPinCodeExpired", func() {
			Expect(err).To(Equal(identity.ErrPinCodeExpired))
		})
	})

	When("the user has no pin", func() {
		BeforeEach(func() {
			user.PinHash = ""
		})

		It("should return ErrInvalidPinCode", func() {
			Expect(err).To(Equal(identity.ErrInvalidPinCode))
		})
	})

	When("the access token is invalid", func() {
		BeforeEach(func() {
			fakeTokens.SubjectReturns("", tokenIssuer.ErrTokenNotValid)
		})

		It("should return ErrInvalidAccessToken", func() {
			Expect(err).To(Equal(identity.ErrInvalidAccessToken))
			Expect(fakeUsers.GetUserCallCount()).To(BeZero())
		})
	})

	When("the access token belongs to another user", func() {
		BeforeEach(func() {
			fakeTokens.SubjectReturns("user-2", nil)
		})

		It("should return ErrInvalidAccessToken", func() {
			Expect(err).To(Equal(identity.ErrInvalidAccessToken))
		})
	})

	When("the user does not exist", func() {
		BeforeEach(func() {
			fakeUsers.GetUserStub = nil
			fakeUsers.GetUserReturns(repository.User{}, repository.ErrUserNotFound)
		})

		It("should return ErrInvalidAccessToken", func() {
			Expect(err).To(Equal(identity.ErrInvalidAccessToken))
		})
	})

	When("the user store fails", func() {
		BeforeEach(func() {
			fakeUsers.GetUserStub = nil
			fakeUsers.GetUserReturns(repository.User{}, errors.New("fake error"))
		})

		It("should wrap the error", func() {
			Expect(err).To(MatchError(ContainSubstring("get user")))
		})
	})

	When("the user keeps retrying", func() {
		BeforeEach(func() {
			pin = "0000"
		})

		It("should hit the attempt limit", func() {
			Expect(err).To(Equal(identity.ErrInvalidPinCode))
			Expect(verifier.VerifyPin(ctx, "user-1", "access-token", pin)).To(Equal(identity.ErrInvalidPinCode))
			Expect(verifier.VerifyPin(ctx, "user-1", "access-token", "1234")).To(Equal(identity.ErrLimitExceeded))
		})

		It("should not limit other users", func() {
			fakeTokens.SubjectReturns("user-2", nil)
			Expect(verifier.VerifyPin(ctx, "user-2", "access-token", "1234")).To(Succeed())
		})
	})

	When("many users have come and gone", func() {
		var clock time.Time

		BeforeEach(func() {
			clock = time.Now().Add(-3 * time.Hour)
			verifier.SetClock(func() time.Time { return clock })
		})

		It("should forget users that regained every attempt", func() {
			Expect(verifier.TrackedUsers()).To(Equal(1))

			Expect(verifier.VerifyPin(ctx, "user-2", "access-token", pin)).To(Equal(identity.ErrInvalidAccessToken))
			Expect(verifier.TrackedUsers()).To(Equal(2))

			clock = clock.Add(2 * time.Hour)
			Expect(verifier.VerifyPin(ctx, "user-3", "access-token", pin)).To(Equal(identity.ErrInvalidAccessToken))
			Expect(verifier.TrackedUsers()).To(Equal(1))
		})

		It("should keep limiting a user that is still short of attempts", func() {
			clock = clock.Add(time.Hour)
			Expect(verifier.VerifyPin(ctx, "user-1", "access-token", pin)).To(Succeed())
			Expect(verifier.VerifyPin(ctx, "user-1", "access-token", pin)).To(Succeed())

			clock = clock.Add(time.Hour)
			Expect(verifier.VerifyPin(ctx, "user-3", "access-token", pin)).To(Equal(identity.ErrInvalidAccessToken))
			Expect(verifier.TrackedUsers()).To(Equal(2))

			Expect(verifier.VerifyPin(ctx, "user-1", "access-token", pin)).To(Succeed())
			Expect(verifier.VerifyPin(ctx, "user-1", "access-token", pin)).To(Equal(identity.ErrLimitExceeded))
		})
	})
})

var _ = Describe("HashPin", func() {
	It("should produce a hash matching the pin", func() {
		hash, err := identity.HashPin("4321")
		Expect(err).NotTo(HaveOccurred())
		Expect(bcrypt.CompareHashAndPassword([]byte(hash), []byte("4321"))).To(Succeed())
	})
})
