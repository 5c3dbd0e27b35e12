package figure

import "gonum.org/v1/plot/vg"

// Style carries the font roles, canvas size and output resolution of a
// figure. Zero values are filled with the house defaults via
// normalizeStyle.
type Style struct {
	TitleSize  vg.Length
	LabelSize  vg.Length
	TickSize   vg.Length
	LegendSize vg.Length

	Width  vg.Length
	Height vg.Length

	DPI int
}

func normalizeStyle(st Style) Style {
	if st.TitleSize == 0 {
		st.TitleSize = vg.Points(18)
	}

	if st.LabelSize == 0 {
		st.LabelSize = vg.Points(18)
	}

	if st.TickSize == 0 {
		st.TickSize = vg.Points(14)
	}

	if st.LegendSize == 0 {
		st.LegendSize = vg.Points(14)
	}

	if st.Width == 0 {
		st.Width = 8 * vg.Inch
	}

	if st.Height == 0 {
		st.Height = 6 * vg.Inch
	}

	if st.DPI == 0 {
		st.DPI = 300
	}

	return st
}
