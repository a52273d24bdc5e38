// Package export renders the dashboard view as an XLSX workbook for
// reporting consumers that want a file instead of the API.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/EhtshamAshraf0/NYC-Taxi-Driver-Efficiency-Analysis/internal/models"
)

const sheetName = "Dashboard"

var headers = []string{
	"Weekday", "Weekday Name", "Hour", "Pickup Zone", "Zone Type",
	"Day Type", "Day Part", "Trip Length",
	"Total Trips", "Active Days", "Avg Trips/Day-Hour",
	"Avg Duration (min)", "Avg Minutes/Mile",
	"Total Fare", "Total Duration (min)",
	"Earnings/Hour", "Duration Volatility (min)",
}

// DashboardWorkbook builds a workbook with one row per dashboard
// record. Undefined metrics are left as blank cells, never zeroes.
func DashboardWorkbook(rows []models.DashboardRow) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	}

	for i, row := range rows {
		values := []interface{}{
			row.PickupWeekday, row.WeekdayName, row.PickupHour, row.PUZone, row.ZoneType,
			row.DayType, row.DayPart, row.TripLengthType,
			row.TotalTrips, row.ActiveDays, row.AvgTripsPerDayHour,
			row.AvgTripDurationMin, row.AvgMinutesPerMile,
			row.TotalFare, row.TotalDurationMin,
			floatOrBlank(row.EarningsPerHour), floatOrBlank(row.VolatilityMin),
		}
		for col, v := range values {
			if v == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
			}
		}
	}

	return f, nil
}

func floatOrBlank(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}
