package store

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/userdirectory/internal/model"
	"github.com/dtroode/userdirectory/internal/testutil"
)

func TestStore_Scenarios(t *testing.T) {
	s := New([]model.User{alice}, testutil.MakeNoopLogger())

	s.Add(bob)
	assert.Equal(t, []model.User{alice, bob}, s.Users())

	s.Delete(1)
	assert.Equal(t, []model.User{bob}, s.Users())
}

func TestStore_ReplaceAllOverwrites(t *testing.T) {
	s := New([]model.User{alice, bob}, testutil.MakeNoopLogger())

	s.Add(carol)
	s.ReplaceAll([]model.User{bob})

	assert.Equal(t, []model.User{bob}, s.Users())
}

func TestStore_Find(t *testing.T) {
	s := New([]model.User{alice, bob}, testutil.MakeNoopLogger())

	u, ok := s.Find(2)
	assert.True(t, ok)
	assert.Equal(t, bob, u)

	_, ok = s.Find(99)
	assert.False(t, ok)
}

func TestStore_VersionBumpsOnlyOnChange(t *testing.T) {
	s := New([]model.User{alice}, testutil.MakeNoopLogger())
	require.Equal(t, uint64(1), s.Snapshot().Version)

	assert.True(t, s.Dispatch(AddUser{User: bob}))
	assert.Equal(t, uint64(2), s.Snapshot().Version)

	assert.False(t, s.Dispatch(DeleteUser{ID: 42}))
	assert.False(t, s.Dispatch(UpdateUser{User: carol}))
	assert.Equal(t, uint64(2), s.Snapshot().Version)

	s.ReplaceAll([]model.User{alice, bob})
	assert.Equal(t, uint64(3), s.Snapshot().Version)
}

func TestStore_UsersReturnsCopy(t *testing.T) {
	s := New([]model.User{alice}, testutil.MakeNoopLogger())

	users := s.Users()
	users[0].Name = "changed"

	assert.Equal(t, "Alice", s.Users()[0].Name)
}

func TestStore_SeedDuplicatesCollapsed(t *testing.T) {
	s := New([]model.User{alice, alice, bob}, testutil.MakeNoopLogger())
	assert.Equal(t, []model.User{alice, bob}, s.Users())
}

func TestStore_Subscribe(t *testing.T) {
	s := New([]model.User{alice}, testutil.MakeNoopLogger())

	ch, unsubscribe := s.Subscribe()
	defer unsubscribe()

	initial := <-ch
	assert.Equal(t, uint64(1), initial.Version)
	assert.Equal(t, []model.User{alice}, initial.Users)

	s.Add(bob)
	next := <-ch
	assert.Equal(t, uint64(2), next.Version)
	assert.Equal(t, []model.User{alice, bob}, next.Users)

	s.Delete(99)
	select {
	case snap := <-ch:
		t.Fatalf("unexpected notification for no-op: %+v", snap)
	default:
	}
}

func TestStore_SubscribeLatestWins(t *testing.T) {
	s := New(nil, testutil.MakeNoopLogger())

	ch, unsubscribe := s.Subscribe()
	defer unsubscribe()
	<-ch

	s.Add(alice)
	s.Add(bob)
	s.Add(carol)

	snap := <-ch
	assert.Equal(t, uint64(4), snap.Version)
	assert.Equal(t, []model.User{alice, bob, carol}, snap.Users)
}

func TestStore_Close(t *testing.T) {
	s := New(nil, testutil.MakeNoopLogger())
	ch, _ := s.Subscribe()
	<-ch

	s.Close()

	_, ok := <-ch
	assert.False(t, ok)
}

func TestStore_ConcurrentDispatch(t *testing.T) {
	s := New(nil, testutil.MakeNoopLogger())

	var wg sync.WaitGroup
	for i := 1; i <= 50; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			s.Add(model.User{ID: id, Name: "u", Email: "u@x.com"})
			_ = s.Users()
		}(int64(i))
	}
	wg.Wait()

	snap := s.Snapshot()
	assert.Len(t, snap.Users, 50)
	assert.Equal(t, uint64(51), snap.Version)
}
