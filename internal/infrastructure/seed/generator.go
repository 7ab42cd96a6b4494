package seed

import (
	"fmt"
	"math"
	"time"

	"lims_service/internal/adapter/persistence/repository"
	"lims_service/internal/domain/entities"

	"github.com/brianvoe/gofakeit/v7"
)

var (
	analysisTypes  = []string{"GPA 2261", "GPA 2172", "BTU Analysis", "Extended Analysis"}
	headerStatuses = []entities.WorkOrderStatus{
		entities.WorkOrderStatusPending,
		entities.WorkOrderStatusPending,
		entities.WorkOrderStatusInProgress,
		entities.WorkOrderStatusCompleted,
		entities.WorkOrderStatusCompleted,
		entities.WorkOrderStatusInvoiced,
	}
	importStatuses = []entities.ImportStatus{
		entities.ImportStatusImported,
		entities.ImportStatusValidated,
		entities.ImportStatusValidated,
		entities.ImportStatusError,
		entities.ImportStatusArchived,
	}
)

// Options sizes a generated data set.
type Options struct {
	Seed       uint64
	Companies  int
	WorkOrders int
	MaxLines   int
	Days       int
}

// DefaultOptions is roughly one busy quarter for a small lab.
func DefaultOptions() Options {
	return Options{Seed: 42, Companies: 8, WorkOrders: 60, MaxLines: 4, Days: 180}
}

// Generate builds a consistent data set: every line points at a header, every header and
// check-in at a company, and every check-out at a cylinder that was sampled.
// The same Seed and now always produce the same records.
func Generate(opts Options, now time.Time) repository.SeedData {
	f := gofakeit.New(opts.Seed)
	now = now.UTC()
	start := now.AddDate(0, 0, -max(opts.Days, 1))
	maxLines := max(opts.MaxLines, 1)

	var data repository.SeedData
	for i := 1; i <= opts.Companies; i++ {
		data.Companies = append(data.Companies, entities.Company{
			ID:          int64(i),
			CompanyName: f.Company(),
			Email:       f.Email(),
			Active:      f.Number(0, 9) > 0,
		})
	}
	if len(data.Companies) == 0 {
		return data
	}

	var lineID, checkInID, checkOutID int64
	for i := 1; i <= opts.WorkOrders; i++ {
		received := f.DateRange(start, now)
		company := data.Companies[f.Number(0, len(data.Companies)-1)]
		header := entities.WorkOrderHeader{
			ID:                   int64(i),
			WorkOrderNumber:      fmt.Sprintf("WO-%s-%04d", received.Format("2006"), i),
			CompanyID:            company.ID,
			Date:                 received.Format("2006-01-02"),
			Status:               headerStatuses[f.Number(0, len(headerStatuses)-1)],
			MileageFee:           money(f.Float64Range(0, 60)),
			MiscellaneousCharges: money(f.Float64Range(0, 25)),
			HourlyFee:            money(f.Float64Range(0, 90)),
			CreatedBy:            f.Username(),
		}
		data.Headers = append(data.Headers, header)

		for n := f.Number(1, maxLines); n > 0; n-- {
			lineID++
			analysisType := analysisTypes[f.Number(0, len(analysisTypes)-1)]
			cylinder := f.Numerify("CYL-#####")
			rushed := f.Number(0, 4) == 0
			data.Lines = append(data.Lines, entities.WorkOrderLine{
				ID:                     lineID,
				HeaderID:               header.ID,
				CylinderNumber:         cylinder,
				AnalysisNumber:         f.Numerify("AN-######"),
				AnalysisType:           analysisType,
				MeterNumber:            f.Numerify("MTR-####"),
				WellName:               fmt.Sprintf("%s %d-%d", f.LastName(), f.Number(1, 40), f.Number(1, 9)),
				Rushed:                 rushed,
				Price:                  linePrice(analysisType, rushed),
				BillingReferenceType:   "PO",
				BillingReferenceNumber: f.Numerify("PO-######"),
				CreatedBy:              header.CreatedBy,
			})

			checkedIn := received.Add(time.Duration(f.Number(0, 8*60)) * time.Minute)
			checkInID++
			data.CheckIns = append(data.CheckIns, entities.CheckInRecord{
				ID:           checkInID,
				CompanyID:    company.ID,
				AnalysisType: analysisType,
				CheckInTime:  checkedIn,
				Rushed:       rushed,
			})

			if header.Status == entities.WorkOrderStatusCompleted || header.Status == entities.WorkOrderStatusInvoiced {
				checkOutID++
				data.CheckOuts = append(data.CheckOuts, entities.CheckOutRecord{
					ID:        checkOutID,
					CompanyID: company.ID,
					Barcode:   cylinder,
					CreatedAt: checkedIn.Add(time.Duration(f.Number(4, 96)) * time.Hour),
				})
			}
		}
	}

	for i := 1; i <= opts.WorkOrders/3; i++ {
		data.Imports = append(data.Imports, entities.ImportRecord{
			ID:         int64(i),
			FileName:   fmt.Sprintf("chromatograph-%s.csv", f.Numerify("####")),
			Status:     importStatuses[f.Number(0, len(importStatuses)-1)],
			ImportedAt: f.DateRange(start, now),
		})
	}
	return data
}

func linePrice(analysisType string, rushed bool) float64 {
	prices := map[string]float64{"GPA 2261": 150, "GPA 2172": 200, "BTU Analysis": 150, "Extended Analysis": 250}
	p := prices[analysisType]
	if rushed {
		p *= 1.5
	}
	return p
}

func money(v float64) float64 {
	return math.Round(v*100) / 100
}
