package handler

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"strconv"

	"github.com/pkordes/travel-planner/backend/internal/domain"
)

// csvHeaders defines the column names written as the first row of any CSV export.
var csvHeaders = []string{
	"id", "destination", "departure_date", "return_date",
	"activities", "accommodation", "plan_details",
}

// writeTripsCSV encodes trips as CSV with a header row.
// Plan narratives contain newlines; encoding/csv quotes those fields.
func writeTripsCSV(w http.ResponseWriter, trips []domain.Trip) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	//nolint:errcheck // bytes.Buffer.Write never returns an error.
	cw.Write(csvHeaders)
	for _, t := range trips {
		//nolint:errcheck
		cw.Write(tripToCSVRecord(t))
	}
	cw.Flush()

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="trips.csv"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	//nolint:errcheck
	buf.WriteTo(w)
}

// tripToCSVRecord encodes a trip as a flat string slice.
func tripToCSVRecord(t domain.Trip) []string {
	return []string{
		strconv.FormatInt(t.ID, 10),
		t.Destination,
		t.DepartureDate.Format(dateLayout),
		t.ReturnDate.Format(dateLayout),
		t.Activities,
		t.Accommodation,
		t.PlanDetails,
	}
}
