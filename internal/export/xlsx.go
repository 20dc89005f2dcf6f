package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/victornavas/unified-api/internal/domain"
)

const sheetName = "Guests"

var headers = []string{
	"Guest ID", "Group ID", "Group ID List",
	"First Name", "Second Name", "Last Name",
	"Classification", "Status",
	"Special Message", "Allergy Comment", "Song Recommendation",
	"Hotel", "Updated By",
}

// WriteGuestsXLSX renders the full directory snapshot as a spreadsheet.
func WriteGuestsXLSX(w io.Writer, guests []domain.Guest) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}

	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return err
		}
	}

	for i, g := range guests {
		values := []interface{}{
			g.ID, g.GroupID, joinIDs(g.GroupIDList),
			g.FirstName, g.SecondName, g.LastName,
			g.Classification, string(g.Status),
			g.SpecialMessage, g.AllergyComment, g.SongRecommendation,
			g.Hotel, g.UpdatedBy,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return err
			}
		}
	}

	return f.Write(w)
}

func joinIDs(ids []int64) string {
	if len(ids) == 0 {
		return ""
	}
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprintf("%d", id)
	}
	return strings.Join(parts, ",")
}
