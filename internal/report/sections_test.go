package report_test

import (
	"testing"

	"github.com/myrjola/reportdesk/internal/report"
	"github.com/stretchr/testify/require"
)

func TestSections(t *testing.T) {
	sections := report.Sections()
	ids := make([]string, 0, len(sections))
	seen := map[report.Field]bool{}
	for _, s := range sections {
		ids = append(ids, s.ID)
		for _, f := range s.Fields {
			require.False(t, seen[f], "field %s in more than one section", f)
			seen[f] = true
		}
	}
	require.Equal(t,
		[]string{"internal-affairs", "personal-info", "demographics", "incident-basic", "incident-details"}, ids)
	require.Len(t, seen, len(report.Fields()), "every field belongs to a section")
	require.Equal(t, "internal-affairs", report.FirstSectionID())

	personal, err := report.SectionByID("personal-info")
	require.NoError(t, err)
	require.Equal(t, report.Viewport{Top: 400, Left: 0, Width: 800, Height: 600, Zoom: 0.8}, personal.Viewport())

	_, err = report.SectionByID("appendix")
	require.ErrorIs(t, err, report.ErrUnknownSection)
}

func TestRegion_Viewport(t *testing.T) {
	left, width, zoom := 50, 400, 2.0
	tests := []struct {
		name   string
		region *report.Region
		want   report.Viewport
	}{
		{
			name:   "missing region uses default",
			region: nil,
			want:   report.Viewport{Top: 0, Left: 0, Width: 800, Height: 800, Zoom: 1},
		},
		{
			name:   "optional values fall back",
			region: &report.Region{Top: 150, Height: 400},
			want:   report.Viewport{Top: 150, Left: 0, Width: 800, Height: 400, Zoom: 1},
		},
		{
			name:   "explicit values kept",
			region: &report.Region{Top: 10, Left: &left, Width: &width, Height: 20, Zoom: &zoom},
			want:   report.Viewport{Top: 10, Left: 50, Width: 400, Height: 20, Zoom: 2},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.region.Viewport())
		})
	}
}

func TestParseSections(t *testing.T) {
	_, err := report.ParseSections([]byte("- id: extra\n  title: Extra\n  fields: [shoeSize]\n"))
	require.ErrorIs(t, err, report.ErrUnknownField)

	_, err = report.ParseSections([]byte("- id: a\n- id: a\n"))
	require.Error(t, err)

	got, err := report.ParseSections([]byte("- id: a\n  title: A\n  fields: [name]\n"))
	require.NoError(t, err)
	require.Nil(t, got[0].Region)
	require.Equal(t, report.DefaultViewport, got[0].Viewport())
}
