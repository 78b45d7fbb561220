package accountaggregate

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/joeywhelan/redisStreamEventStore/internal/domain"
	"github.com/joeywhelan/redisStreamEventStore/internal/eventlog"
	"github.com/joeywhelan/redisStreamEventStore/pkg/randompkg"
)

func TestAccount_DepositRequiresPositiveAmount(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		amount    int64
		wantErr   error
		wantFunds int64
	}{
		{name: "positive", amount: 100, wantFunds: 100},
		{name: "zero", amount: 0, wantErr: domain.ErrInvalidAmount},
		{name: "negative", amount: -5, wantErr: domain.ErrInvalidAmount},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			a := New(randompkg.AccountID(), 1, "1-0")

			err := a.Deposit(tc.amount)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				require.Zero(t, a.Funds)

				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.wantFunds, a.Funds)
		})
	}
}

func TestAccount_WithdrawRequiresSufficientFunds(t *testing.T) {
	t.Parallel()

	id := randompkg.AccountID()
	deposit := randompkg.Amount(1_000)

	a := New(id, 1, "1-0")
	require.NoError(t, a.Deposit(deposit))

	err := a.Withdraw(deposit + 50)
	require.ErrorIs(t, err, domain.ErrInsufficientFunds)
	require.Equal(t, deposit, a.Funds, "failed withdrawal must not mutate funds")

	err = a.Withdraw(0)
	require.ErrorIs(t, err, domain.ErrInvalidAmount)

	require.NoError(t, a.Withdraw(deposit))
	require.Zero(t, a.Funds)
}

func TestAccount_RehydrateFoldsFundsConservation(t *testing.T) {
	t.Parallel()

	events := []eventlog.Event{
		{ID: "acct", Version: 1, Type: eventlog.EventCreate, Timestamp: "1-0"},
		{ID: "acct", Version: 2, Type: eventlog.EventDeposit, Amount: 100, Timestamp: "2-0"},
		{ID: "acct", Version: 3, Type: eventlog.EventWithdraw, Amount: 30, Timestamp: "3-0"},
		{ID: "other", Version: 7, Type: eventlog.EventDeposit, Amount: 999, Timestamp: "4-0"},
		{ID: "acct", Version: 4, Type: eventlog.EventDeposit, Amount: 10, Timestamp: "5-0"},
	}

	a := New("acct", 0, "")
	a.Rehydrate(events)

	require.Equal(t, int64(80), a.Funds)
	require.Equal(t, int64(4), a.Version)
	require.Equal(t, "5-0", a.Timestamp)
}

func TestAccount_RehydrateSkipsAlreadyAppliedAndForeignEvents(t *testing.T) {
	t.Parallel()

	events := []eventlog.Event{
		{ID: "acct", Version: 1, Type: eventlog.EventCreate, Timestamp: "1-0"},
		{ID: "acct", Version: 2, Type: eventlog.EventDeposit, Amount: 100, Timestamp: "2-0"},
	}

	full := New("acct", 0, "")
	full.Rehydrate(events)

	// Re-delivering the already-applied last event, together with an
	// event for another id, is a no-op.
	before := *full
	full.Rehydrate([]eventlog.Event{
		events[1],
		{ID: "other", Version: 9, Type: eventlog.EventDeposit, Amount: 999, Timestamp: "3-0"},
	})
	require.True(t, cmp.Equal(before, *full))

	// Rehydrating from empty yields a state identical to folding the
	// entire stream.
	fromEmpty := New("acct", 0, "")
	fromEmpty.Rehydrate(events)
	require.True(t, cmp.Equal(*fromEmpty, *full))
}

func TestAccount_Snapshot(t *testing.T) {
	t.Parallel()

	id := randompkg.AccountID()
	amount := randompkg.Amount(1_000)

	a := New(id, 3, "3-0")
	require.NoError(t, a.Deposit(amount))

	want := domain.Snapshot{ID: id, Version: 3, Timestamp: "3-0", Funds: amount}
	require.Equal(t, want, a.Snapshot())
}
