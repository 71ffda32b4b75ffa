package manager_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/conectando/internal/donor"
	"github.com/MrJamesThe3rd/conectando/internal/ledger"
	"github.com/MrJamesThe3rd/conectando/internal/location"
	"github.com/MrJamesThe3rd/conectando/internal/manager"
	"github.com/MrJamesThe3rd/conectando/internal/project"
)

func newSweepService(t *testing.T) (*manager.Service, *ledger.MockTx) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := ledger.NewMockRepository(ctrl)
	tx := ledger.NewMockTx(ctrl)

	repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	tx.EXPECT().Rollback().Return(nil).AnyTimes()

	svc := manager.NewService(repo,
		project.NewService(project.NewMockRepository(ctrl)),
		donor.NewService(donor.NewMockRepository(ctrl)),
		location.NewService(location.NewMockRepository(ctrl)),
	)
	svc.SetNow(func() time.Time { return today })

	return svc, tx
}

func TestService_Sweep(t *testing.T) {
	svc, tx := newSweepService(t)

	ana := &donor.User{Nickname: "Ana1970", Money: dec(1500)}
	juan := &donor.User{Nickname: "Juan2001", Money: dec(1500)}
	complete := projectFinishing("complete", today)
	incomplete := projectFinishing("incomplete", today)
	running := projectFinishing("running", today.AddDate(0, 1, 0))

	_, err := ana.Donate(dec(500), "", complete, today)
	require.NoError(t, err)
	_, err = juan.Donate(dec(500), "", complete, today)
	require.NoError(t, err)
	refunded, err := juan.Donate(dec(500), "", incomplete, today)
	require.NoError(t, err)
	_, err = ana.Donate(dec(100), "", running, today)
	require.NoError(t, err)

	gomock.InOrder(
		tx.EXPECT().OpenProjects(gomock.Any()).Return([]*project.Project{complete, incomplete, running}, nil),
		tx.EXPECT().Donors(gomock.Any(), []string{"Juan2001"}).Return([]*donor.User{juan}, nil),
		tx.EXPECT().DeleteDonations(gomock.Any(), []uuid.UUID{refunded.ID}).Return(nil),
		tx.EXPECT().SaveDonor(gomock.Any(), juan).Return(nil),
		tx.EXPECT().SaveProject(gomock.Any(), complete).Return(nil),
		tx.EXPECT().SaveProject(gomock.Any(), incomplete).Return(nil),
		tx.EXPECT().Commit().Return(nil),
	)

	res, err := svc.Sweep(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"complete", "incomplete"}, res.Closed)
	assert.Equal(t, []string{"incomplete"}, res.Refunded)
	assert.Equal(t, 1, res.RefundedDonations)

	assert.True(t, complete.Closed)
	assert.True(t, incomplete.Closed)
	assert.False(t, running.Closed)
	assert.True(t, dec(1000).Equal(juan.Money))
	assert.Len(t, running.Donations, 1)
}

func TestService_Sweep_NothingFinished(t *testing.T) {
	svc, tx := newSweepService(t)

	running := projectFinishing("running", today.AddDate(0, 0, 1))

	tx.EXPECT().OpenProjects(gomock.Any()).Return([]*project.Project{running}, nil)
	tx.EXPECT().DeleteDonations(gomock.Any(), gomock.Len(0)).Return(nil)
	tx.EXPECT().Commit().Return(nil)

	res, err := svc.Sweep(context.Background())
	require.NoError(t, err)

	assert.Empty(t, res.Closed)
	assert.Empty(t, res.Refunded)
}

func TestService_Sweep_LoadFails(t *testing.T) {
	svc, tx := newSweepService(t)

	tx.EXPECT().OpenProjects(gomock.Any()).Return(nil, errors.New("db down"))

	_, err := svc.Sweep(context.Background())
	assert.Error(t, err)
}
