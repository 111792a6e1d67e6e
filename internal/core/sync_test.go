package core_test

import (
	"context"
	"encoding/json"
	"errors"

	"tokenrelay/internal/core"
	"tokenrelay/internal/core/fake"
	"tokenrelay/internal/privatechain"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("RelaySyncer", func() {
	var (
		fakeSource *fake.RelayEventSource
		syncer     *core.RelaySyncer
		ctx        context.Context
		fakeErr    error
	)

	BeforeEach(func() {
		fakeSource = new(fake.RelayEventSource)
		syncer = core.NewRelaySyncer(zap.NewNop().Sugar(), fakeSource)
		ctx = context.Background()
		fakeErr = errors.New("fake error")

		fakeSource.RelayEventsReturns(json.RawMessage(`[{"id":1}]`), nil)
		fakeSource.GetBlockByNumberReturns(&privatechain.Block{Number: "0x64", Hash: "0xhead"}, nil)
	})

	It("should start at the chain head", func() {
		fakeSource.BlockNumberReturns(100, nil)

		Expect(syncer.Sync(ctx)).To(Succeed())

		_, from, to := fakeSource.RelayEventsArgsForCall(0)
		Expect(from).To(BeEquivalentTo(100))
		Expect(to).To(BeEquivalentTo(100))

		_, events := fakeSource.ApplyRelayEventsArgsForCall(0)
		Expect(string(events)).To(Equal(`[{"id":1}]`))
	})

	It("should continue after the last synced block", func() {
		fakeSource.BlockNumberReturnsOnCall(0, 100, nil)
		fakeSource.BlockNumberReturnsOnCall(1, 105, nil)

		Expect(syncer.Sync(ctx)).To(Succeed())
		Expect(syncer.Sync(ctx)).To(Succeed())

		_, from, to := fakeSource.RelayEventsArgsForCall(1)
		Expect(from).To(BeEquivalentTo(101))
		Expect(to).To(BeEquivalentTo(105))
	})

	It("should do nothing while no block was added", func() {
		fakeSource.BlockNumberReturns(100, nil)

		Expect(syncer.Sync(ctx)).To(Succeed())
		Expect(syncer.Sync(ctx)).To(Succeed())

		Expect(fakeSource.RelayEventsCallCount()).To(Equal(1))
	})

	It("should not apply empty event lists", func() {
		fakeSource.BlockNumberReturns(100, nil)
		fakeSource.RelayEventsReturns(json.RawMessage(` [] `), nil)

		Expect(syncer.Sync(ctx)).To(Succeed())
		Expect(fakeSource.ApplyRelayEventsCallCount()).To(BeZero())
	})

	It("should retry the same range when applying fails", func() {
		fakeSource.BlockNumberReturns(100, nil)
		fakeSource.ApplyRelayEventsReturnsOnCall(0, fakeErr)

		Expect(syncer.Sync(ctx)).To(MatchError(fakeErr))
		Expect(syncer.Sync(ctx)).To(Succeed())

		_, from, to := fakeSource.RelayEventsArgsForCall(1)
		Expect(from).To(BeEquivalentTo(100))
		Expect(to).To(BeEquivalentTo(100))
	})

	It("should return block number errors", func() {
		fakeSource.BlockNumberReturns(0, fakeErr)

		Expect(syncer.Sync(ctx)).To(MatchError(fakeErr))
		Expect(fakeSource.RelayEventsCallCount()).To(BeZero())
	})

	It("should wait for the head block to become available", func() {
		fakeSource.BlockNumberReturns(100, nil)
		fakeSource.GetBlockByNumberReturnsOnCall(0, nil, nil)

		Expect(syncer.Sync(ctx)).To(Succeed())
		Expect(fakeSource.RelayEventsCallCount()).To(BeZero())

		Expect(syncer.Sync(ctx)).To(Succeed())
		_, from, to := fakeSource.RelayEventsArgsForCall(0)
		Expect(from).To(BeEquivalentTo(100))
		Expect(to).To(BeEquivalentTo(100))

		_, number := fakeSource.GetBlockByNumberArgsForCall(1)
		Expect(number).To(BeEquivalentTo(100))
	})

	It("should return head block errors", func() {
		fakeSource.BlockNumberReturns(100, nil)
		fakeSource.GetBlockByNumberReturns(nil, fakeErr)

		Expect(syncer.Sync(ctx)).To(MatchError(fakeErr))
		Expect(fakeSource.RelayEventsCallCount()).To(BeZero())
	})
})
