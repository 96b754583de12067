package service

import (
	"testing"
	"time"

	"github.com/nataliatalam/raimon/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestDetectStuck(t *testing.T) {
	now := time.Date(2026, 8, 30, 15, 0, 0, 0, time.UTC)
	at := func(h int) time.Time { return time.Date(2026, 8, 30, h, 0, 0, 0, time.UTC) }
	action := func(kind domain.ActionKind, when time.Time) *domain.ActionLog {
		return &domain.ActionLog{ID: "a", UserID: "u-1", TaskID: "t-1", Action: kind, CreatedAt: when}
	}

	cases := []struct {
		name    string
		actions []*domain.ActionLog
		want    bool
	}{
		{
			name: "three consecutive skips",
			actions: []*domain.ActionLog{
				action(domain.ActionSkip, at(14)),
				action(domain.ActionSkip, at(13)),
				action(domain.ActionSkip, at(12)),
			},
			want: true,
		},
		{
			name: "only two skips",
			actions: []*domain.ActionLog{
				action(domain.ActionSkip, at(14)),
				action(domain.ActionSkip, at(13)),
			},
			want: false,
		},
		{
			name: "done interrupts the run",
			actions: []*domain.ActionLog{
				action(domain.ActionSkip, at(14)),
				action(domain.ActionDone, at(13)),
				action(domain.ActionSkip, at(12)),
			},
			want: false,
		},
		{
			name: "completion today clears stuck",
			actions: []*domain.ActionLog{
				action(domain.ActionSkip, at(14)),
				action(domain.ActionSkip, at(13)),
				action(domain.ActionSkip, at(12)),
				action(domain.ActionDone, at(9)),
			},
			want: false,
		},
		{
			name: "completion yesterday does not clear stuck",
			actions: []*domain.ActionLog{
				action(domain.ActionSkip, at(14)),
				action(domain.ActionSkip, at(13)),
				action(domain.ActionSkip, at(12)),
				action(domain.ActionDone, time.Date(2026, 8, 29, 18, 0, 0, 0, time.UTC)),
			},
			want: true,
		},
		{
			name: "defer is not a skip",
			actions: []*domain.ActionLog{
				action(domain.ActionSkip, at(14)),
				action(domain.ActionDefer, at(13)),
				action(domain.ActionSkip, at(12)),
			},
			want: false,
		},
		{
			name:    "no actions",
			actions: nil,
			want:    false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DetectStuck(tc.actions, now))
		})
	}
}
