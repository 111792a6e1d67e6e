package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"

	"tokenrelay/internal/http/handler/middleware"
	"tokenrelay/internal/http/handler/middleware/fake"
	"tokenrelay/pkg/jwt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Middleware", func() {
	var (
		w        *httptest.ResponseRecorder
		req      *http.Request
		seenCtx  map[string]string
		nextHits int
		next     http.Handler
	)

	BeforeEach(func() {
		w = httptest.NewRecorder()
		req = httptest.NewRequest("GET", "/wallet/balance", nil)
		nextHits = 0
		seenCtx = map[string]string{}
		next = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			nextHits++
			if v, ok := r.Context().Value(middleware.RequestIDKey).(string); ok {
				seenCtx["request_id"] = v
			}
			if v, ok := r.Context().Value(middleware.UserIDKey).(string); ok {
				seenCtx["user_id"] = v
			}
			w.WriteHeader(http.StatusTeapot)
		})
	})

	Describe("RequestID", func() {
		It("should assign a request id", func() {
			middleware.NewRequestIDMiddleware().RequestID(next).ServeHTTP(w, req)

			Expect(nextHits).To(Equal(1))
			Expect(seenCtx["request_id"]).NotTo(BeEmpty())
			Expect(w.Header().Get(middleware.RequestIDHeader)).To(Equal(seenCtx["request_id"]))
		})

		It("should keep the caller's request id", func() {
			req.Header.Set(middleware.RequestIDHeader, "req-1")
			middleware.NewRequestIDMiddleware().RequestID(next).ServeHTTP(w, req)

			Expect(seenCtx["request_id"]).To(Equal("req-1"))
		})
	})

	Describe("Logging", func() {
		It("should pass the request through", func() {
			middleware.NewLoggingMiddleware(zap.NewNop().Sugar()).Logging(next).ServeHTTP(w, req)

			Expect(nextHits).To(Equal(1))
			Expect(w.Code).To(Equal(http.StatusTeapot))
		})
	})

	Describe("Auth", func() {
		var tokens *fake.TokenValidator

		BeforeEach(func() {
			tokens = new(fake.TokenValidator)
			tokens.SubjectReturns("user-1", nil)
		})

		JustBeforeEach(func() {
			middleware.NewAuthMiddleware(zap.NewNop().Sugar(), tokens).Auth(next).ServeHTTP(w, req)
		})

		When("the header is missing", func() {
			It("should reject the request", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(nextHits).To(BeZero())
				Expect(tokens.SubjectCallCount()).To(BeZero())
			})
		})

		When("the token is valid", func() {
			BeforeEach(func() {
				req.Header.Set(middleware.AuthHeader, "id-token")
			})

			It("should put the user id on the context", func() {
				Expect(w.Code).To(Equal(http.StatusTeapot))
				Expect(seenCtx["user_id"]).To(Equal("user-1"))

				token, use := tokens.SubjectArgsForCall(0)
				Expect(token).To(Equal("id-token"))
				Expect(use).To(Equal(jwt.UseID))
			})
		})

		When("the token is rejected", func() {
			BeforeEach(func() {
				req.Header.Set(middleware.AuthHeader, "access-token")
				tokens.SubjectReturns("", jwt.ErrWrongTokenUse)
			})

			It("should reject the request", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(w.Body.String()).To(ContainSubstring("Unauthorized."))
				Expect(nextHits).To(BeZero())
			})
		})

		When("the token validator fails", func() {
			BeforeEach(func() {
				req.Header.Set(middleware.AuthHeader, "id-token")
				tokens.SubjectReturns("", errors.New("boom"))
			})

			It("should reject the request", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
			})
		})
	})
})
