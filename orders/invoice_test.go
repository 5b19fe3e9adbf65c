package orders

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"kirana/models"
)

func sampleOrder() models.Order {
	return models.Order{
		OrderRef:     "a6d2e9c4-7f1b-4c28-9a30-5c1d2e3f4a5b",
		UserID:       "u1",
		ProductID:    "p1",
		ProductTitle: "Soap Bar",
		UnitPrice:    49,
		Quantity:     2,
		OrderDate:    time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
	}
}

func TestBuildInvoicePDF(t *testing.T) {
	pdf, err := buildInvoicePDF(sampleOrder(), nil)
	if err != nil {
		t.Fatalf("buildInvoicePDF: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatalf("output does not start with a PDF header: %q", pdf[:min(len(pdf), 8)])
	}
}

func TestBuildInvoicePDFWithAddress(t *testing.T) {
	addr := &models.Address{
		Line1:   "14 MG Road",
		City:    "Bengaluru",
		State:   "Karnataka",
		Pincode: "560001",
		Country: "India",
	}
	pdf, err := buildInvoicePDF(sampleOrder(), addr)
	if err != nil {
		t.Fatalf("buildInvoicePDF: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatal("empty PDF output")
	}
}

func TestInvoiceQRPayloadSigned(t *testing.T) {
	payload := invoiceQRPayload("ref-1", "p1")
	parts := strings.Split(payload, "|")
	if len(parts) != 4 {
		t.Fatalf("payload = %q, want ref|product|ts|sig", payload)
	}
	if parts[0] != "ref-1" || parts[1] != "p1" {
		t.Fatalf("payload carries %q and %q", parts[0], parts[1])
	}
	// HMAC-SHA256, base64: 32 bytes encode to 44 characters.
	if len(parts[3]) != 44 {
		t.Fatalf("signature length = %d, want 44", len(parts[3]))
	}
}
