package projection

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func customerRow() Row {
	return Row{
		"id":             "aab9cdb2-af5c-4f6f-b0d3-b9a093b2a58f",
		"name":           "Ada",
		"email":          "ada@x.io",
		"image_url":      "https://img.example/ada.png",
		"total_invoices": int64(2),
		"total_pending":  int64(100),
		"total_paid":     int64(50),
	}
}

func TestCustomerResult(t *testing.T) {
	result, err := CustomerResult(customerRow())
	require.NoError(t, err)

	assert.Equal(t, uuid.MustParse("aab9cdb2-af5c-4f6f-b0d3-b9a093b2a58f"), result.ID)
	assert.Equal(t, "Ada", result.Name)
	assert.Equal(t, "ada@x.io", result.Email)
	require.NotNil(t, result.ImageURL)
	assert.Equal(t, "https://img.example/ada.png", *result.ImageURL)
	assert.EqualValues(t, 2, result.TotalInvoices)
	require.NotNil(t, result.TotalPending)
	assert.EqualValues(t, 100, *result.TotalPending)
	require.NotNil(t, result.TotalPaid)
	assert.EqualValues(t, 50, *result.TotalPaid)
}

func TestCustomerResultOptionalAbsent(t *testing.T) {
	row := customerRow()
	row["image_url"] = nil
	delete(row, "total_pending")
	row["total_paid"] = nil

	result, err := CustomerResult(row)
	require.NoError(t, err)
	assert.Nil(t, result.ImageURL)
	assert.Nil(t, result.TotalPending)
	assert.Nil(t, result.TotalPaid)
}

func TestCustomerResultMissingRequired(t *testing.T) {
	for _, field := range []string{"id", "name", "email", "total_invoices"} {
		row := customerRow()
		delete(row, field)

		_, err := CustomerResult(row)
		var mapErr *MappingError
		require.ErrorAs(t, err, &mapErr, "field %s", field)
		assert.Equal(t, field, mapErr.Field)
	}
}

func TestCustomerResultCoercions(t *testing.T) {
	row := customerRow()
	// Postgres SUM over bigint scans as numeric text; counts can arrive as
	// floats through some drivers.
	row["total_invoices"] = float64(2)
	row["total_pending"] = "100"
	row["total_paid"] = []byte("50")

	result, err := CustomerResult(row)
	require.NoError(t, err)
	assert.EqualValues(t, 2, result.TotalInvoices)
	assert.EqualValues(t, 100, *result.TotalPending)
	assert.EqualValues(t, 50, *result.TotalPaid)
}

func TestCustomerResultMalformed(t *testing.T) {
	row := customerRow()
	row["id"] = "not-a-uuid"
	_, err := CustomerResult(row)
	var mapErr *MappingError
	require.ErrorAs(t, err, &mapErr)
	assert.Equal(t, "id", mapErr.Field)

	row = customerRow()
	row["total_pending"] = "lots"
	_, err = CustomerResult(row)
	require.ErrorAs(t, err, &mapErr)
	assert.Equal(t, "total_pending", mapErr.Field)

	row = customerRow()
	row["total_invoices"] = 2.5
	_, err = CustomerResult(row)
	require.ErrorAs(t, err, &mapErr)
	assert.Equal(t, "total_invoices", mapErr.Field)
}

func invoiceRow() Row {
	return Row{
		"id":          "0b7e9da5-4b23-4f52-9b10-0c52ed2a9a11",
		"customer_id": "aab9cdb2-af5c-4f6f-b0d3-b9a093b2a58f",
		"name":        "Ada",
		"email":       "ada@x.io",
		"image_url":   nil,
		"amount":      int64(100),
		"date":        time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		"status":      "pending",
	}
}

func TestInvoiceResult(t *testing.T) {
	result, err := InvoiceResult(invoiceRow())
	require.NoError(t, err)

	assert.Equal(t, uuid.MustParse("0b7e9da5-4b23-4f52-9b10-0c52ed2a9a11"), result.ID)
	assert.Equal(t, uuid.MustParse("aab9cdb2-af5c-4f6f-b0d3-b9a093b2a58f"), result.CustomerID)
	assert.Nil(t, result.ImageURL)
	assert.EqualValues(t, 100, result.Amount)
	assert.Equal(t, "2024-01-15", result.Date)
	assert.Equal(t, "pending", result.Status)
}

func TestInvoiceResultDateShapes(t *testing.T) {
	for _, v := range []interface{}{
		"2024-01-15",
		"2024-01-15 00:00:00+00:00",
		"2024-01-15T00:00:00Z",
		[]byte("2024-01-15"),
		time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
	} {
		row := invoiceRow()
		row["date"] = v
		result, err := InvoiceResult(row)
		require.NoError(t, err, "date %v", v)
		assert.Equal(t, "2024-01-15", result.Date)
	}
}

func TestInvoiceResultBadDate(t *testing.T) {
	row := invoiceRow()
	row["date"] = "15/01/2024"
	_, err := InvoiceResult(row)
	var mapErr *MappingError
	require.ErrorAs(t, err, &mapErr)
	assert.Equal(t, "date", mapErr.Field)

	row = invoiceRow()
	row["date"] = nil
	_, err = InvoiceResult(row)
	require.ErrorAs(t, err, &mapErr)
	assert.Equal(t, "date", mapErr.Field)
	assert.Equal(t, "missing", mapErr.Reason)
}

func TestLatestInvoiceResult(t *testing.T) {
	row := Row{
		"id":        "0b7e9da5-4b23-4f52-9b10-0c52ed2a9a11",
		"name":      "Ada",
		"email":     "ada@x.io",
		"image_url": "https://img.example/ada.png",
		"amount":    int64(250),
	}
	result, err := LatestInvoiceResult(row)
	require.NoError(t, err)
	assert.Equal(t, "Ada", result.Name)
	assert.EqualValues(t, 250, result.Amount)
	require.NotNil(t, result.ImageURL)

	delete(row, "amount")
	_, err = LatestInvoiceResult(row)
	var mapErr *MappingError
	require.ErrorAs(t, err, &mapErr)
	assert.Equal(t, "amount", mapErr.Field)
}
