package model

//go:generate go run github.com/dmarkham/enumer -type RunStatus -trimprefix RunStatus -transform lower -json -sql -output run_status.gen.go

// RunStatus is the lifecycle state of a SyncRun.
type RunStatus int

const (
	RunStatusRunning RunStatus = iota
	RunStatusSucceeded
	// RunStatusPartial means some sensors synced and at least one failed.
	RunStatusPartial
	RunStatusFailed
)
