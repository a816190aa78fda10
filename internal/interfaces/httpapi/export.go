package httpapi

import (
	"context"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"

	"github.com/valyala/bytebufferpool"

	"github.com/riskibarqy/fpl-dashboard/internal/domain/stat"
	"github.com/riskibarqy/fpl-dashboard/internal/domain/view"
)

const csvDecimals = 2

func writeCSV(ctx context.Context, w http.ResponseWriter, filename string, table view.Table) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := encodeTableCSV(buf, table); err != nil {
		writeInternalError(ctx, w)
		return err
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, err := w.Write(buf.B)
	return err
}

func encodeTableCSV(buf *bytebufferpool.ByteBuffer, table view.Table) error {
	writer := csv.NewWriter(buf)
	if err := writer.Write(table.Columns); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	record := make([]string, len(table.Columns))
	for _, row := range table.Rows {
		for i := range record {
			record[i] = ""
			if i < len(row) {
				record[i] = csvCell(row[i])
			}
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func csvCell(cell any) string {
	switch value := cell.(type) {
	case nil:
		return ""
	case string:
		return value
	case stat.Value:
		return value.Format(csvDecimals)
	case int:
		return strconv.Itoa(value)
	case int64:
		return strconv.FormatInt(value, 10)
	case float64:
		return strconv.FormatFloat(value, 'f', csvDecimals, 64)
	case bool:
		return strconv.FormatBool(value)
	default:
		return fmt.Sprint(value)
	}
}
