package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qatalent/jobboard/internal/data"
	"github.com/qatalent/jobboard/internal/domain/model"
)

func activeJob(id, employerID string) *model.JobWithEmployer {
	return &model.JobWithEmployer{
		Job: model.Job{ID: id, EmployerID: employerID, Status: model.JobStatusActive},
	}
}

func TestLedgerService_Submit(t *testing.T) {
	t.Parallel()

	jobs := &stubJobRepo{
		GetByIDFunc: func(_ context.Context, id string) (*model.JobWithEmployer, error) {
			return activeJob(id, "employer-1"), nil
		},
	}
	apps := &stubApplicationRepo{
		CreateFunc: func(_ context.Context, params *model.SubmitApplicationParams) (*model.Application, error) {
			return &model.Application{
				ID:          "app-1",
				JobID:       params.JobID,
				ApplicantID: params.ApplicantID,
				Status:      model.ApplicationStatusPending,
			}, nil
		},
	}
	svc := NewLedgerService(LedgerServiceOptions{Applications: apps, Jobs: jobs, StrictTransitions: true})

	app, err := svc.Submit(context.Background(), &model.SubmitApplicationParams{
		JobID:       "job-1",
		ApplicantID: "seeker-1",
	})
	require.NoError(t, err)
	assert.Equal(t, model.ApplicationStatusPending, app.Status)
}

func TestLedgerService_SubmitJobNotOpen(t *testing.T) {
	t.Parallel()

	jobs := &stubJobRepo{
		GetByIDFunc: func(_ context.Context, id string) (*model.JobWithEmployer, error) {
			j := activeJob(id, "employer-1")
			j.Status = model.JobStatusClosed
			return j, nil
		},
	}
	svc := NewLedgerService(LedgerServiceOptions{Applications: &stubApplicationRepo{}, Jobs: jobs})

	_, err := svc.Submit(context.Background(), &model.SubmitApplicationParams{
		JobID:       "job-1",
		ApplicantID: "seeker-1",
	})
	assert.ErrorIs(t, err, ErrJobNotOpen)
}

func TestLedgerService_SubmitMissingJob(t *testing.T) {
	t.Parallel()

	jobs := &stubJobRepo{
		GetByIDFunc: func(_ context.Context, _ string) (*model.JobWithEmployer, error) {
			return nil, data.ErrJobNotFound
		},
	}
	svc := NewLedgerService(LedgerServiceOptions{Applications: &stubApplicationRepo{}, Jobs: jobs})

	_, err := svc.Submit(context.Background(), &model.SubmitApplicationParams{
		JobID:       "job-1",
		ApplicantID: "seeker-1",
	})
	assert.ErrorIs(t, err, data.ErrJobNotFound)
}

func TestLedgerService_SubmitDuplicate(t *testing.T) {
	t.Parallel()

	jobs := &stubJobRepo{
		GetByIDFunc: func(_ context.Context, id string) (*model.JobWithEmployer, error) {
			return activeJob(id, "employer-1"), nil
		},
	}
	apps := &stubApplicationRepo{
		CreateFunc: func(_ context.Context, _ *model.SubmitApplicationParams) (*model.Application, error) {
			return nil, data.ErrAlreadyApplied
		},
	}
	svc := NewLedgerService(LedgerServiceOptions{Applications: apps, Jobs: jobs})

	_, err := svc.Submit(context.Background(), &model.SubmitApplicationParams{
		JobID:       "job-1",
		ApplicantID: "seeker-1",
	})
	assert.ErrorIs(t, err, data.ErrAlreadyApplied)
}

func TestLedgerService_SubmitCoverLetterCap(t *testing.T) {
	t.Parallel()

	svc := NewLedgerService(LedgerServiceOptions{
		Applications:      &stubApplicationRepo{},
		Jobs:              &stubJobRepo{},
		CoverLetterMaxLen: 10,
	})

	long := strings.Repeat("a", 11)
	_, err := svc.Submit(context.Background(), &model.SubmitApplicationParams{
		JobID:       "job-1",
		ApplicantID: "seeker-1",
		CoverLetter: &long,
	})
	assert.ErrorIs(t, err, ErrCoverLetterTooLong)
}

func TestLedgerService_ListForJobOwnership(t *testing.T) {
	t.Parallel()

	jobs := &stubJobRepo{
		GetByIDFunc: func(_ context.Context, id string) (*model.JobWithEmployer, error) {
			if id == "missing" {
				return nil, data.ErrJobNotFound
			}
			return activeJob(id, "owner"), nil
		},
	}
	apps := &stubApplicationRepo{
		ListByJobFunc: func(_ context.Context, jobID string) ([]*model.ApplicationWithDetails, error) {
			return []*model.ApplicationWithDetails{
				{Application: model.Application{ID: "app-1", JobID: jobID}},
			}, nil
		},
	}
	svc := NewLedgerService(LedgerServiceOptions{Applications: apps, Jobs: jobs})

	list, err := svc.ListForJob(context.Background(), "job-1", "owner")
	require.NoError(t, err)
	assert.Len(t, list, 1)

	// a non-owner gets an empty list, not an error
	list, err = svc.ListForJob(context.Background(), "job-1", "someone-else")
	require.NoError(t, err)
	assert.Empty(t, list)

	// as does a missing job
	list, err = svc.ListForJob(context.Background(), "missing", "owner")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestLedgerService_GetByIDVisibility(t *testing.T) {
	t.Parallel()

	apps := &stubApplicationRepo{
		GetByIDFunc: func(_ context.Context, id string) (*model.Application, error) {
			return &model.Application{ID: id, JobID: "job-1", ApplicantID: "seeker-1"}, nil
		},
		GetByIDForEmployerFunc: func(_ context.Context, id, employerID string) (*model.Application, error) {
			if employerID != "owner" {
				return nil, data.ErrApplicationNotFound
			}
			return &model.Application{ID: id, JobID: "job-1", ApplicantID: "seeker-1"}, nil
		},
	}
	svc := NewLedgerService(LedgerServiceOptions{Applications: apps, Jobs: &stubJobRepo{}})

	// the applicant sees their own application
	app, err := svc.GetByID(context.Background(), "app-1", "seeker-1")
	require.NoError(t, err)
	assert.Equal(t, "app-1", app.ID)

	// the owning employer sees it too
	_, err = svc.GetByID(context.Background(), "app-1", "owner")
	require.NoError(t, err)

	// anyone else gets not-found
	_, err = svc.GetByID(context.Background(), "app-1", "stranger")
	assert.ErrorIs(t, err, data.ErrApplicationNotFound)
}

func TestLedgerService_UpdateStatusInvalid(t *testing.T) {
	t.Parallel()

	svc := NewLedgerService(LedgerServiceOptions{
		Applications: &stubApplicationRepo{},
		Jobs:         &stubJobRepo{},
	})

	_, err := svc.UpdateStatus(context.Background(), UpdateStatusParams{
		ID:         "app-1",
		EmployerID: "owner",
		Status:     model.ApplicationStatus("SHORTLISTED"),
	})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestLedgerService_UpdateStatusStrictTransitions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		current model.ApplicationStatus
		next    model.ApplicationStatus
		wantErr bool
	}{
		{"pending to reviewed", model.ApplicationStatusPending, model.ApplicationStatusReviewed, false},
		{"pending straight to accepted", model.ApplicationStatusPending, model.ApplicationStatusAccepted, false},
		{"reviewed to rejected", model.ApplicationStatusReviewed, model.ApplicationStatusRejected, false},
		{"reviewed back to pending", model.ApplicationStatusReviewed, model.ApplicationStatusPending, true},
		{"accepted is frozen", model.ApplicationStatusAccepted, model.ApplicationStatusRejected, true},
		{"rejected is frozen", model.ApplicationStatusRejected, model.ApplicationStatusReviewed, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			apps := &stubApplicationRepo{
				GetByIDForEmployerFunc: func(_ context.Context, id, _ string) (*model.Application, error) {
					return &model.Application{ID: id, Status: tt.current}, nil
				},
				UpdateStatusFunc: func(_ context.Context, id, _ string, status model.ApplicationStatus) (*model.Application, error) {
					return &model.Application{ID: id, Status: status}, nil
				},
			}
			svc := NewLedgerService(LedgerServiceOptions{
				Applications:      apps,
				Jobs:              &stubJobRepo{},
				StrictTransitions: true,
			})

			app, err := svc.UpdateStatus(context.Background(), UpdateStatusParams{
				ID:         "app-1",
				EmployerID: "owner",
				Status:     tt.next,
			})
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrIllegalTransition)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.next, app.Status)
		})
	}
}

func TestLedgerService_UpdateStatusPermissiveMode(t *testing.T) {
	t.Parallel()

	apps := &stubApplicationRepo{
		UpdateStatusFunc: func(_ context.Context, id, _ string, status model.ApplicationStatus) (*model.Application, error) {
			return &model.Application{ID: id, Status: status}, nil
		},
	}
	svc := NewLedgerService(LedgerServiceOptions{
		Applications:      apps,
		Jobs:              &stubJobRepo{},
		StrictTransitions: false,
	})

	// permissive mode allows any valid status swap without a pre-read
	app, err := svc.UpdateStatus(context.Background(), UpdateStatusParams{
		ID:         "app-1",
		EmployerID: "owner",
		Status:     model.ApplicationStatusPending,
	})
	require.NoError(t, err)
	assert.Equal(t, model.ApplicationStatusPending, app.Status)
}

func TestLedgerService_UpdateStatusNonOwner(t *testing.T) {
	t.Parallel()

	apps := &stubApplicationRepo{
		GetByIDForEmployerFunc: func(_ context.Context, _, _ string) (*model.Application, error) {
			return nil, data.ErrApplicationNotFound
		},
	}
	svc := NewLedgerService(LedgerServiceOptions{
		Applications:      apps,
		Jobs:              &stubJobRepo{},
		StrictTransitions: true,
	})

	_, err := svc.UpdateStatus(context.Background(), UpdateStatusParams{
		ID:         "app-1",
		EmployerID: "not-the-owner",
		Status:     model.ApplicationStatusReviewed,
	})
	assert.ErrorIs(t, err, data.ErrApplicationNotFound)
}

func TestLedgerService_HasApplied(t *testing.T) {
	t.Parallel()

	apps := &stubApplicationRepo{
		ExistsFunc: func(_ context.Context, _, applicantID string) (bool, error) {
			return applicantID == "seeker-1", nil
		},
	}
	svc := NewLedgerService(LedgerServiceOptions{Applications: apps, Jobs: &stubJobRepo{}})

	applied, err := svc.HasApplied(context.Background(), "job-1", "seeker-1")
	require.NoError(t, err)
	assert.True(t, applied)

	applied, err = svc.HasApplied(context.Background(), "job-1", "seeker-2")
	require.NoError(t, err)
	assert.False(t, applied)
}

func TestLedgerService_StatsForEmployer(t *testing.T) {
	t.Parallel()

	apps := &stubApplicationRepo{
		StatsByEmployerFunc: func(_ context.Context, _ string) (*model.ApplicationStats, error) {
			return &model.ApplicationStats{Total: 3, Pending: 1, Reviewed: 1, Accepted: 1}, nil
		},
	}
	svc := NewLedgerService(LedgerServiceOptions{Applications: apps, Jobs: &stubJobRepo{}})

	stats, err := svc.StatsForEmployer(context.Background(), "employer-1")
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Total)
}
