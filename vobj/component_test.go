package vobj

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func sampleCalendar() *Component {
	return &Component{
		Name: "VCALENDAR",
		Properties: []*Property{
			{Name: "VERSION", Value: "2.0"},
			{Name: "ATTACH", Value: "first"},
			{Name: "ATTACH", Value: "second"},
		},
		Components: []*Component{
			{Name: "VEVENT", Properties: []*Property{{Name: "SUMMARY", Value: "one"}}},
			{Name: "VTODO"},
			{Name: "VEVENT", Properties: []*Property{{Name: "SUMMARY", Value: "two"}}},
		},
	}
}

func TestPropLookup(t *testing.T) {
	c := sampleCalendar()

	require.Equal(t, "2.0", c.Prop("VERSION").Value)
	require.Equal(t, "2.0", c.Prop("version").Value)
	require.Nil(t, c.Prop("PRODID"))

	attach := c.Props("ATTACH")
	require.Len(t, attach, 2)
	require.Equal(t, "first", attach[0].Value)
	require.Equal(t, "second", attach[1].Value)
}

func TestChildLookup(t *testing.T) {
	c := sampleCalendar()

	require.Equal(t, "one", c.Child("vevent").Prop("SUMMARY").Value)
	require.Nil(t, c.Child("VALARM"))

	events := c.Children("VEVENT")
	require.Len(t, events, 2)
	require.Equal(t, "two", events[1].Prop("SUMMARY").Value)
}

func TestDocumentRoot(t *testing.T) {
	doc := &Document{Components: []*Component{
		{Name: "VCARD"},
		{Name: "VCALENDAR"},
	}}
	require.Equal(t, "VCALENDAR", doc.Root("vcalendar").Name)
	require.Nil(t, doc.Root("VJOURNAL"))
}
