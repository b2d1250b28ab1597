package scheduler

// LogMsgTickDropped is logged when the worker pool is too busy for a tick
const LogMsgTickDropped = "Scheduled job dropped, worker pool busy"
