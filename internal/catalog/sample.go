package catalog

// Sample returns the built-in catalog: stations between Aulendorf, Stuttgart
// and Horb with one RB 14 run and one IRE 6 run.
func Sample() *Catalog {
	return &Catalog{
		Stations: []StationRecord{
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
		},
		Lines: []LineRecord{
			{
				Name: "RB 14 001",
				Stops: []StopRecord{
					{Tag: "SGH", Departure: "17:55"},
					{Tag: "BÖB", Arrival: "18:15", Departure: "18:16"},
					{Tag: "HRR", Arrival: "18:25", Departure: "18:26"},
					{Tag: "GÄF", Arrival: "18:29", Departure: "18:29"},
					{Tag: "BBH", Arrival: "18:32", Departure: "18:33"},
					{Tag: "EGZ", Arrival: "18:36", Departure: "18:36"},
					{Tag: "EIG", Arrival: "18:39", Departure: "18:39"},
					{Tag: "HOB", Arrival: "18:48"},
				},
			},
			{
				Name: "IRE 6 001",
				Stops: []StopRecord{
					{Tag: "ALD", Departure: "15:06"},
					{Tag: "ALH", Arrival: "15:12", Departure: "15:13"},
					{Tag: "BSG", Arrival: "15:20", Departure: "15:21"},
					{Tag: "HBO", Arrival: "15:26", Departure: "15:27"},
					{Tag: "HBT", Arrival: "15:29", Departure: "15:29"},
					{Tag: "MNG", Arrival: "15:34", Departure: "15:35"},
					{Tag: "SGM", Arrival: "15:48", Departure: "15:50"},
					{Tag: "STZ", Arrival: "16:00", Departure: "16:01"},
					{Tag: "ASE", Arrival: "16:10", Departure: "16:11"},
					{Tag: "BIW", Arrival: "16:22", Departure: "16:25"},
					{Tag: "HIG", Arrival: "16:37", Departure: "16:39"},
					{Tag: "MÖS", Arrival: "16:45", Departure: "16:46"},
					{Tag: "TÜH", Arrival: "16:57", Departure: "17:00"},
					{Tag: "RLH", Arrival: "17:08", Departure: "17:09"},
					{Tag: "SGH", Arrival: "17:50"},
				},
			},
		},
	}
}
