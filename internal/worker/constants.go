package worker

// LogMsgWorkerJobFailed is logged when a worker fails to process a job
const LogMsgWorkerJobFailed = "Worker job failed"

// Log messages for the periodic game jobs
const (
	LogMsgMarketTickFailed = "Scheduled market tick failed"
	LogMsgPotGaugesFailed  = "Failed to refresh lottery pot gauges"
)

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount           = 2
	TestQueueSize             = 10
	TestExpectedJobCount      = 2
	TestWorkerProcessWaitTime = 100 // milliseconds
)
