package service

import (
	"context"
	"time"

	"github.com/faridmohammadi00/entrypoint-app/pkg/job"
)

// RegisterSyncJobs schedules a periodic re-fetch of every slice the desk
// shows. Jobs are no-ops while there is no session.
func (d *Desk) RegisterSyncJobs(js *job.Service, interval time.Duration) *job.Service {
	return js.
		RegisterJob("sync-profile", interval, d.syncing(func(ctx context.Context) error {
			_, err := d.store.FetchProfile(ctx)
			return err
		})).
		RegisterJob("sync-buildings", interval, d.syncing(func(ctx context.Context) error {
			_, err := d.store.FetchBuildings(ctx)
			return err
		})).
		RegisterJob("sync-doormen", interval, d.syncing(func(ctx context.Context) error {
			_, err := d.store.FetchDoormen(ctx)
			return err
		})).
		RegisterJob("sync-visitors", interval, d.syncing(func(ctx context.Context) error {
			_, err := d.store.FetchVisitors(ctx)
			return err
		})).
		RegisterJob("sync-visits", interval, d.syncing(func(ctx context.Context) error {
			_, err := d.store.FetchVisits(ctx)
			return err
		})).
		RegisterJob("sync-plans", interval, d.syncing(func(ctx context.Context) error {
			_, err := d.store.FetchPlans(ctx)
			return err
		})).
		RegisterJob("sync-active-plans", interval, d.syncing(func(ctx context.Context) error {
			u := d.store.CurrentUser()
			if u == nil || u.ID == "" {
				return nil
			}

			_, err := d.store.FetchUserActivePlans(ctx, u.ID)

			return err
		}))
}

// RegisterAdminSyncJobs adds the jobs that need an administrator account.
func (d *Desk) RegisterAdminSyncJobs(js *job.Service, enabled bool, interval time.Duration) *job.Service {
	return js.TryRegisterJob(enabled, "sync-users", interval, d.syncing(func(ctx context.Context) error {
		_, err := d.store.FetchUsers(ctx)
		return err
	}))
}

func (d *Desk) syncing(fn func(ctx context.Context) error) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		if d.requireSession() != nil {
			return nil
		}

		return fn(ctx)
	}
}
