package accountservice

import (
	"context"
	"errors"
	"testing"

	gomock "github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"

	"github.com/joeywhelan/redisStreamEventStore/internal/accountaggregate"
	"github.com/joeywhelan/redisStreamEventStore/internal/domain"
	"github.com/joeywhelan/redisStreamEventStore/internal/eventlog"
	"github.com/joeywhelan/redisStreamEventStore/pkg/randompkg"
)

const testStream = "accountStream"

func TestService_CreateConflictsOnDuplicateID(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := randompkg.AccountID()

	log := NewMockEventLog(ctrl)
	log.EXPECT().AddID(gomock.Any(), idNamespace, id).Times(1).Return(false, nil)
	log.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	s := New(log, testStream)

	_, err := s.Create(context.Background(), id)
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("Create() error = %v, want %v", err, domain.ErrConflict)
	}
}

func TestService_CreateConflictsOnPublishLoss(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := randompkg.AccountID()

	log := NewMockEventLog(ctrl)
	log.EXPECT().AddID(gomock.Any(), idNamespace, id).Times(1).Return(true, nil)
	log.EXPECT().
		Publish(gomock.Any(), testStream, eventlog.Event{ID: id, Version: 0, Type: eventlog.EventCreate}).
		Times(1).
		Return(nil, nil)

	s := New(log, testStream)

	_, err := s.Create(context.Background(), id)
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("Create() error = %v, want %v", err, domain.ErrConflict)
	}
}

func TestService_CreateSucceeds(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := randompkg.AccountID()

	log := NewMockEventLog(ctrl)
	log.EXPECT().AddID(gomock.Any(), idNamespace, id).Times(1).Return(true, nil)
	log.EXPECT().
		Publish(gomock.Any(), testStream, eventlog.Event{ID: id, Version: 0, Type: eventlog.EventCreate}).
		Times(1).
		Return(&eventlog.PublishResult{Version: 1, Timestamp: "1-0"}, nil)

	s := New(log, testStream)

	got, err := s.Create(context.Background(), id)
	if err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}

	want := domain.Snapshot{ID: id, Version: 1, Timestamp: "1-0", Funds: 0}
	if !cmp.Equal(got, want) {
		t.Errorf("Create() = %+v, want %+v", got, want)
	}
}

func TestService_DepositInvalidAmountDoesNotPublish(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := randompkg.AccountID()

	log := NewMockEventLog(ctrl)
	log.EXPECT().
		Get(gomock.Any(), testStream, id, "").
		Times(1).
		Return([]eventlog.Event{{ID: id, Version: 1, Type: eventlog.EventCreate, Timestamp: "1-0"}}, nil)
	log.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	s := New(log, testStream)

	_, err := s.Deposit(context.Background(), id, 0)
	if !errors.Is(err, domain.ErrInvalidAmount) {
		t.Fatalf("Deposit() error = %v, want %v", err, domain.ErrInvalidAmount)
	}
}

func TestService_DepositNotFoundWhenUncachedAndEmpty(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := randompkg.AccountID()

	log := NewMockEventLog(ctrl)
	log.EXPECT().Get(gomock.Any(), testStream, id, "").Times(1).Return(nil, nil)

	s := New(log, testStream)

	_, err := s.Deposit(context.Background(), id, randompkg.Amount(100))
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Deposit() error = %v, want %v", err, domain.ErrNotFound)
	}
}

// TestService_DepositConflictCompensatesCache exercises the scenario
// where two concurrent deposits against the same cached version race
// on publish: the loser's in-memory aggregate must be rolled back so a
// retry reflects only the winning delta, not both.
func TestService_DepositConflictCompensatesCache(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := randompkg.AccountID()
	amount := randompkg.Amount(100)

	log := NewMockEventLog(ctrl)
	log.EXPECT().
		Get(gomock.Any(), testStream, id, "").
		Times(1).
		Return([]eventlog.Event{{ID: id, Version: 1, Type: eventlog.EventCreate, Timestamp: "1-0"}}, nil)
	log.EXPECT().
		Publish(gomock.Any(), testStream, eventlog.Event{ID: id, Version: 1, Type: eventlog.EventDeposit, Amount: amount}).
		Times(1).
		Return(nil, nil)

	s := New(log, testStream)

	_, err := s.Deposit(context.Background(), id, amount)
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("Deposit() error = %v, want %v", err, domain.ErrConflict)
	}

	acc, ok := s.cachedAccount(id)
	if !ok {
		t.Fatalf("expected %s to remain cached after conflict", id)
	}

	if acc.Funds != 0 {
		t.Errorf("cached funds = %d after compensated conflict, want 0", acc.Funds)
	}

	if acc.Version != 1 {
		t.Errorf("cached version = %d after compensated conflict, want unchanged 1", acc.Version)
	}
}

func TestService_DepositSucceedsAndUpdatesCache(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := randompkg.AccountID()
	amount := randompkg.Amount(1_000)

	log := NewMockEventLog(ctrl)
	log.EXPECT().
		Get(gomock.Any(), testStream, id, "").
		Times(1).
		Return([]eventlog.Event{{ID: id, Version: 1, Type: eventlog.EventCreate, Timestamp: "1-0"}}, nil)
	log.EXPECT().
		Publish(gomock.Any(), testStream, eventlog.Event{ID: id, Version: 1, Type: eventlog.EventDeposit, Amount: amount}).
		Times(1).
		Return(&eventlog.PublishResult{Version: 2, Timestamp: "2-0"}, nil)

	s := New(log, testStream)

	got, err := s.Deposit(context.Background(), id, amount)
	if err != nil {
		t.Fatalf("Deposit() unexpected error: %v", err)
	}

	want := domain.Snapshot{ID: id, Version: 2, Timestamp: "2-0", Funds: amount}
	if !cmp.Equal(got, want) {
		t.Errorf("Deposit() = %+v, want %+v", got, want)
	}
}

func TestService_WithdrawInsufficientFunds(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := randompkg.AccountID()

	log := NewMockEventLog(ctrl)
	log.EXPECT().Get(gomock.Any(), testStream, id, "1-0").Times(1).Return(nil, nil)
	log.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	s := New(log, testStream)
	s.storeAccount(id, accountaggregate.New(id, 1, "1-0"))

	_, err := s.Withdraw(context.Background(), id, 1)
	if !errors.Is(err, domain.ErrInsufficientFunds) {
		t.Fatalf("Withdraw() error = %v, want %v", err, domain.ErrInsufficientFunds)
	}
}

func TestService_FetchUsesCacheAndAdvancesFromLog(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := randompkg.AccountID()
	amount := randompkg.Amount(100)

	log := NewMockEventLog(ctrl)
	log.EXPECT().
		Get(gomock.Any(), testStream, id, "1-0").
		Times(1).
		Return([]eventlog.Event{
			{ID: id, Version: 2, Type: eventlog.EventDeposit, Amount: amount, Timestamp: "2-0"},
		}, nil)

	s := New(log, testStream)
	s.storeAccount(id, accountaggregate.New(id, 1, "1-0"))

	got, err := s.Fetch(context.Background(), id)
	if err != nil {
		t.Fatalf("Fetch() unexpected error: %v", err)
	}

	want := domain.Snapshot{ID: id, Version: 2, Timestamp: "2-0", Funds: amount}
	if !cmp.Equal(got, want) {
		t.Errorf("Fetch() = %+v, want %+v", got, want)
	}
}

func TestService_Close(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	log := NewMockEventLog(ctrl)
	log.EXPECT().Close().Times(1).Return(nil)

	s := New(log, testStream)

	if err := s.Close(); err != nil {
		t.Fatalf("Close() unexpected error: %v", err)
	}
}
