package model

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func newPeriod(status string, start, end time.Time) RegistrationPeriodModel {
	return RegistrationPeriodModel{
		RegistrationPeriodID:                  uuid.New(),
		RegistrationPeriodName:                "Pendaftaran Skripsi Ganjil 2026/2027",
		RegistrationPeriodStartDate:           start,
		RegistrationPeriodEndDate:             end,
		RegistrationPeriodStatus:              status,
		RegistrationPeriodAllowProposal:       true,
		RegistrationPeriodAllowRegistration:   true,
		RegistrationPeriodMaxTopicsPerStudent: 3,
		RegistrationPeriodMaxMembersPerTopic:  5,
	}
}

func TestIsOpen(t *testing.T) {
	now := time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC)
	start := now.Add(-24 * time.Hour)
	end := now.Add(24 * time.Hour)

	tests := []struct {
		name   string
		period RegistrationPeriodModel
		want   bool
	}{
		{"aktif di dalam window", newPeriod(PeriodStatusActive, start, end), true},
		{"inactive di dalam window", newPeriod(PeriodStatusInactive, start, end), false},
		{"closed di dalam window", newPeriod(PeriodStatusClosed, start, end), false},
		{"aktif sebelum window", newPeriod(PeriodStatusActive, now.Add(time.Hour), end), false},
		{"aktif setelah window", newPeriod(PeriodStatusActive, start, now.Add(-time.Hour)), false},
		{"tepat di batas start", newPeriod(PeriodStatusActive, now, end), true},
		{"tepat di batas end", newPeriod(PeriodStatusActive, start, now), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.period.IsOpen(now))
		})
	}
}

func TestAllowsMajor(t *testing.T) {
	now := time.Now()
	allowed := uuid.New()
	other := uuid.New()

	p := newPeriod(PeriodStatusActive, now.Add(-time.Hour), now.Add(time.Hour))

	// allow-list kosong: semua prodi boleh
	assert.True(t, p.AllowsMajor(&other))
	assert.True(t, p.AllowsMajor(nil))

	p.RegistrationPeriodAllowedMajorIDs = pq.StringArray{allowed.String()}
	assert.True(t, p.AllowsMajor(&allowed))
	assert.False(t, p.AllowsMajor(&other))
	assert.False(t, p.AllowsMajor(nil))
}

func TestCanProposeAndRegister(t *testing.T) {
	now := time.Now()
	major := uuid.New()

	p := newPeriod(PeriodStatusActive, now.Add(-time.Hour), now.Add(time.Hour))
	assert.True(t, p.CanPropose(now))
	assert.True(t, p.CanRegister(now, &major))

	p.RegistrationPeriodAllowProposal = false
	assert.False(t, p.CanPropose(now))
	assert.True(t, p.CanRegister(now, &major))

	p.RegistrationPeriodAllowRegistration = false
	assert.False(t, p.CanRegister(now, &major))

	// window tertutup mengalahkan allow flags
	p.RegistrationPeriodAllowProposal = true
	p.RegistrationPeriodAllowRegistration = true
	p.RegistrationPeriodStatus = PeriodStatusClosed
	assert.False(t, p.CanPropose(now))
	assert.False(t, p.CanRegister(now, &major))
}
