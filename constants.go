package main

import "time"

const standardMargin = 2

const statusMessageLifetime = 3 * time.Second

// Session states
type sessionState int

const (
	campaignsState sessionState = iota
	campaignDetail
	overviewState
	createIdea
	contribute
	configView
	loading
	errorState
)

func (ss sessionState) String() string {
	switch ss {
	case campaignsState:
		return "campaigns"
	case campaignDetail:
		return "campaign details"
	case overviewState:
		return "overview"
	case createIdea:
		return "new idea"
	case contribute:
		return "contribute"
	case configView:
		return "configuration"
	case loading:
		return "loading"
	case errorState:
		return "error"
	}

	return "unknown"
}
