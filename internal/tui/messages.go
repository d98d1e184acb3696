package tui

import "time"

// clearNoticeMsg expires the notice with the matching sequence number.
type clearNoticeMsg struct {
	id int
}

const noticeDuration = 2 * time.Second

type noticeKind int

const (
	noticeInfo noticeKind = iota
	noticeSuccess
	noticeError
)
