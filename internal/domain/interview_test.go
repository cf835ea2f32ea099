package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"go-interview-tracker/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to string
		allowed  bool
	}{
		{domain.StatusScheduled, domain.StatusInProgress, true},
		{domain.StatusScheduled, domain.StatusCompleted, true},
		{domain.StatusScheduled, domain.StatusCancelled, true},
		{domain.StatusInProgress, domain.StatusCompleted, true},
		{domain.StatusInProgress, domain.StatusCancelled, true},
		{domain.StatusInProgress, domain.StatusScheduled, false},
		{domain.StatusCompleted, domain.StatusInProgress, false},
		{domain.StatusCompleted, domain.StatusScheduled, false},
		{domain.StatusCancelled, domain.StatusInProgress, false},
		{domain.StatusCancelled, domain.StatusCompleted, false},
		{domain.StatusCompleted, domain.StatusCompleted, true}, // no-op stays legal
	}

	for _, tc := range cases {
		iv := &domain.Interview{Status: tc.from}
		assert.Equalf(t, tc.allowed, iv.CanTransition(tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestRecordingUploadedDerived(t *testing.T) {
	iv := &domain.Interview{}
	assert.False(t, iv.RecordingUploaded())

	empty := ""
	iv.Recording = &empty
	assert.False(t, iv.RecordingUploaded())

	ref := "interview_recordings/2025/06/16/rec.mp3"
	iv.Recording = &ref
	assert.True(t, iv.RecordingUploaded())
}

func TestInterviewJSONIncludesRecordingFlag(t *testing.T) {
	ref := "interview_recordings/2025/06/16/rec.mp3"
	iv := domain.Interview{
		CandidateName: "张伟",
		Status:        domain.StatusScheduled,
		ScheduledTime: time.Date(2025, 6, 16, 10, 0, 0, 0, time.UTC),
		Recording:     &ref,
	}

	raw, err := json.Marshal(iv)
	assert.NoError(t, err)

	var decoded map[string]interface{}
	assert.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, true, decoded["recording_uploaded"])
	assert.Equal(t, "张伟", decoded["candidate_name"])
}
