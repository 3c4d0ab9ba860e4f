package gtfs

// Data holds the static GTFS tables a timetable catalog needs
type Data struct {
	Agency    []Agency
	Routes    []Route
	Stops     []Stop
	Trips     []Trip
	StopTimes []StopTime
}

// Agency is a row of agency.txt
type Agency struct {
	AgencyID   string
	AgencyName string
	AgencyURL  string
}

// Route is a row of routes.txt
type Route struct {
	RouteID        string
	AgencyID       string
	RouteShortName string
	RouteLongName  string
	RouteType      int
}

// Stop is a row of stops.txt
type Stop struct {
	StopID        string
	StopCode      string
	StopName      string
	LocationType  int
	ParentStation string
}

// Trip is a row of trips.txt
type Trip struct {
	RouteID      string
	ServiceID    string
	TripID       string
	TripHeadsign string
	TripName     string
	DirectionID  int
}

// StopTime is a row of stop_times.txt. Times stay as GTFS strings
// ("HH:MM:SS", hours may exceed 23).
type StopTime struct {
	TripID        string
	ArrivalTime   string
	DepartureTime string
	StopID        string
	StopSequence  int
}
