// Package jobs provides the scheduled background work of the kitchen.
//
// Jobs are cron-based, built on github.com/robfig/cron/v3 with a seconds field.
//
// # Available Jobs
//
//  1. KitchenJob - prepares every Completed order
//  2. DeliveryJob - delivers every Prepared order
//  3. EventRelayJob - forwards new audit events to the message broker
//
// # Usage
//
// Jobs are managed through JobManager:
//
//	jobManager := jobs.NewJobManager(kitchenJob, deliveryJob, relayJob)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
//   - Kitchen and delivery jobs skip orders that a concurrent request already
//     moved on or removed (InvalidState, NotFound); other errors are logged
//   - The relay stops a tick at the first failed publish and retries from that
//     event on the next tick, so the broker sees every event at least once
//   - Failed job starts stop the jobs already running
//
// A tick never overlaps the previous one of the same job.
package jobs
