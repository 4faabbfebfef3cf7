package truck

import (
	"errors"
)

var (
	// ErrEpisodeDone reports that the peer closed the connection cleanly,
	// which is the simulator's only end-of-episode signal. Any other
	// transport failure surfaces as its own error and must not be
	// mistaken for a finished episode.
	ErrEpisodeDone = errors.New("episode finished: peer closed the connection")
)
