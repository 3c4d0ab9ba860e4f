package timetable

import "testing"

var at = MustParseTimeOfDay

// sampleTimetable builds the Aulendorf/Stuttgart/Horb network with the
// RB 14 001 and IRE 6 001 runs.
func sampleTimetable(t *testing.T) *Timetable {
	t.Helper()

	stations := []Station{
		{Tag: "ALD", Name: "Aulendorf"},
		{Tag: "ALH", Name: "Altshausen"},
		{Tag: "BSG", Name: "Bad Saulgau"},
		{Tag: "HBO", Name: "Herbertingen Ort"},
		{Tag: "HBT", Name: "Herbertingen"},
		{Tag: "MNG", Name: "Mengen"},
		{Tag: "SGM", Name: "Sigmaringen"},
		{Tag: "STZ", Name: "Storzingen"},
		{Tag: "ASE", Name: "Albstadt-Ebingen"},
		{Tag: "BIW", Name: "Balingen in Württemberg"},
		{Tag: "HIG", Name: "Hechingen"},
		{Tag: "MÖS", Name: "Mössingen"},
		{Tag: "TÜH", Name: "Tübingen Hauptbahnhof"},
		{Tag: "RLH", Name: "Reutlingen Hauptbahnhof"},
		{Tag: "SGH", Name: "Stuttgart Hbf"},
		{Tag: "BÖB", Name: "Böblingen"},
		{Tag: "HRR", Name: "Herrenberg"},
		{Tag: "GÄF", Name: "Gäufelden"},
		{Tag: "BBH", Name: "Bondorf bei Herrenberg"},
		{Tag: "EGZ", Name: "Ergenzingen"},
		{Tag: "EIG", Name: "Eutingen im Gäu"},
		{Tag: "HOB", Name: "Horb"},
	}

	lines := []LineSpec{
		{
			Name: "RB 14 001",
			Stops: []StopSpec{
				Start("SGH", at("17:55")),
				Via("BÖB", at("18:15"), at("18:16")),
				Via("HRR", at("18:25"), at("18:26")),
				Via("GÄF", at("18:29"), at("18:29")),
				Via("BBH", at("18:32"), at("18:33")),
				Via("EGZ", at("18:36"), at("18:36")),
				Via("EIG", at("18:39"), at("18:39")),
				End("HOB", at("18:48")),
			},
		},
		{
			Name: "IRE 6 001",
			Stops: []StopSpec{
				Start("ALD", at("15:06")),
				Via("ALH", at("15:12"), at("15:13")),
				Via("BSG", at("15:20"), at("15:21")),
				Via("HBO", at("15:26"), at("15:27")),
				Via("HBT", at("15:29"), at("15:29")),
				Via("MNG", at("15:34"), at("15:35")),
				Via("SGM", at("15:48"), at("15:50")),
				Via("STZ", at("16:00"), at("16:01")),
				Via("ASE", at("16:10"), at("16:11")),
				Via("BIW", at("16:22"), at("16:25")),
				Via("HIG", at("16:37"), at("16:39")),
				Via("MÖS", at("16:45"), at("16:46")),
				Via("TÜH", at("16:57"), at("17:00")),
				Via("RLH", at("17:08"), at("17:09")),
				End("SGH", at("17:50")),
			},
		},
	}

	tt, err := Build(stations, lines)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return tt
}

func mustResolve(t *testing.T, tt *Timetable, tag string) *Station {
	t.Helper()
	s, err := tt.Resolve(tag)
	if err != nil {
		t.Fatalf("Resolve(%q) error = %v", tag, err)
	}
	return s
}
