package history

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	pkgerrors "github.com/ecomvoyage/ecomvoyage-backend/pkg/errors"
	"github.com/ecomvoyage/ecomvoyage-backend/pkg/redis"
)

func TestAddMovesDuplicateToFront(t *testing.T) {
	t.Parallel()
	svc := newTestService(t, &stubKV{data: map[string]string{}})
	ctx := context.Background()

	for _, id := range []string{"3", "3", "1"} {
		if _, err := svc.Add(ctx, "device-1", id); err != nil {
			t.Fatalf("add %s: %v", id, err)
		}
	}

	got := svc.List(ctx, "device-1")
	want := []string{"1", "3"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestAddCapsAtMaxEntries(t *testing.T) {
	t.Parallel()
	svc := newTestService(t, &stubKV{data: map[string]string{}})
	ctx := context.Background()

	for i := 0; i < MaxEntries+5; i++ {
		if _, err := svc.Add(ctx, "device-1", fmt.Sprintf("p%d", i)); err != nil {
			t.Fatalf("add: %v", err)
		}
	}

	got := svc.List(ctx, "device-1")
	if len(got) != MaxEntries {
		t.Fatalf("expected history capped at %d, got %d", MaxEntries, len(got))
	}
	if got[0] != fmt.Sprintf("p%d", MaxEntries+4) {
		t.Fatalf("most recent id should be first, got %s", got[0])
	}
}

func TestAddValidatesInput(t *testing.T) {
	t.Parallel()
	svc := newTestService(t, &stubKV{data: map[string]string{}})

	if _, err := svc.Add(context.Background(), "", "1"); pkgerrors.As(err) == nil {
		t.Fatalf("expected validation error for missing device id")
	}
	if _, err := svc.Add(context.Background(), "device-1", "  "); pkgerrors.As(err) == nil {
		t.Fatalf("expected validation error for missing product id")
	}
}

func TestListDegradesToEmptyOnStoreFailure(t *testing.T) {
	t.Parallel()
	svc := newTestService(t, &stubKV{getErr: errors.New("connection refused")})

	if got := svc.List(context.Background(), "device-1"); len(got) != 0 {
		t.Fatalf("expected empty history on store failure, got %v", got)
	}
}

func TestListDegradesToEmptyOnCorruptPayload(t *testing.T) {
	t.Parallel()
	kv := &stubKV{data: map[string]string{}}
	svc := newTestService(t, kv)
	kv.data[kv.HistoryKey("device-1")] = "{not json"

	if got := svc.List(context.Background(), "device-1"); len(got) != 0 {
		t.Fatalf("expected empty history on corrupt payload, got %v", got)
	}
}

func TestAddReportsWriteFailure(t *testing.T) {
	t.Parallel()
	svc := newTestService(t, &stubKV{data: map[string]string{}, setErr: errors.New("write refused")})

	_, err := svc.Add(context.Background(), "device-1", "1")
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency error, got %v", err)
	}
}

func newTestService(t *testing.T, kv *stubKV) Service {
	t.Helper()
	svc, err := NewService(kv, nil, time.Hour)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

type stubKV struct {
	data   map[string]string
	getErr error
	setErr error
}

func (s *stubKV) Get(ctx context.Context, key string) (string, error) {
	if s.getErr != nil {
		return "", s.getErr
	}
	v, ok := s.data[key]
	if !ok {
		return "", redis.Nil
	}
	return v, nil
}

func (s *stubKV) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	if s.setErr != nil {
		return s.setErr
	}
	s.data[key] = fmt.Sprint(value)
	return nil
}

func (s *stubKV) HistoryKey(deviceID string) string {
	return "ecv:history:" + deviceID
}
