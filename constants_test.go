package main

import (
	"testing"

	"github.com/carlmjohnson/be"
)

func TestSessionStateString(t *testing.T) {
	tests := []struct {
		state sessionState
		want  string
	}{
		{campaignsState, "campaigns"},
		{campaignDetail, "campaign details"},
		{overviewState, "overview"},
		{createIdea, "new idea"},
		{contribute, "contribute"},
		{configView, "configuration"},
		{loading, "loading"},
		{errorState, "error"},
		{sessionState(99), "unknown"},
	}

	for _, tt := range tests {
		be.Equal(t, tt.want, tt.state.String())
	}
}
