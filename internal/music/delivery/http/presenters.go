package http

import "day-to-day/internal/music"

type soundscapeResp struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	URL   string `json:"url"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

type listResp struct {
	Soundscapes []soundscapeResp `json:"soundscapes"`
	ActiveID    string           `json:"activeId"`
}

func (h *handler) newListResp(out music.ListOutput) listResp {
	soundscapes := make([]soundscapeResp, len(out.Soundscapes))
	for i, s := range out.Soundscapes {
		soundscapes[i] = soundscapeResp{
			ID:    s.ID,
			Name:  s.Name,
			URL:   s.URL,
			Icon:  s.Icon,
			Color: s.Color,
		}
	}
	return listResp{Soundscapes: soundscapes, ActiveID: out.ActiveID}
}

type toggleResp struct {
	ActiveID string `json:"activeId"`
}
