package http

import "day-to-day/internal/timer"

type presetReq struct {
	Preset string `json:"preset" binding:"required"`
}

func (req presetReq) toPreset() timer.Preset {
	return timer.Preset(req.Preset)
}

type snapshotResp struct {
	State            string  `json:"state"`
	Preset           string  `json:"preset"`
	TotalSeconds     int     `json:"totalSeconds"`
	RemainingSeconds int     `json:"remainingSeconds"`
	Display          string  `json:"display"`
	Progress         float64 `json:"progress"`
	Completed        bool    `json:"completed"`
}

func newSnapshotResp(s timer.Snapshot) snapshotResp {
	return snapshotResp{
		State:            string(s.State),
		Preset:           string(s.Preset),
		TotalSeconds:     s.TotalSeconds,
		RemainingSeconds: s.RemainingSeconds,
		Display:          s.Display,
		Progress:         s.Progress,
		Completed:        s.Completed,
	}
}
