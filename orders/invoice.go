package orders

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"time"

	"kirana/db"
	"kirana/models"
	"kirana/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func hmacSecret() []byte {
	if s := os.Getenv("KIRANA_HMAC_SECRET"); s != "" {
		return []byte(s)
	}
	return []byte("kirana-dev-secret")
}

// invoiceQRPayload signs orderRef|productId|timestamp so a scanned
// invoice can be verified against tampering.
func invoiceQRPayload(orderRef, productID string) string {
	data := fmt.Sprintf("%s|%s|%d", orderRef, productID, time.Now().Unix())
	h := hmac.New(sha256.New, hmacSecret())
	h.Write([]byte(data))
	sig := base64.StdEncoding.EncodeToString(h.Sum(nil))
	return fmt.Sprintf("%s|%s", data, sig)
}

// PrintInvoice renders the order as a PDF with a signed QR code.
func PrintInvoice(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(ps.ByName("orderId"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid order ID", utils.KindBadRequest)
		return
	}

	var order models.Order
	if err := db.OrdersCollection.FindOne(ctx, bson.M{"_id": objID}).Decode(&order); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Order not found", utils.KindNotFound)
		return
	}

	var address *models.Address
	if addrID, err := primitive.ObjectIDFromHex(order.ShippingAddressID); err == nil {
		var a models.Address
		if err := db.AddressesCollection.FindOne(ctx, bson.M{"_id": addrID}).Decode(&a); err == nil {
			address = &a
		}
	}

	pdfBytes, err := buildInvoicePDF(order, address)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate invoice", utils.KindStoreFailure)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=invoice-"+order.OrderRef+".pdf")
	w.Write(pdfBytes)
}

func buildInvoicePDF(order models.Order, address *models.Address) ([]byte, error) {
	qrPNG, err := qrcode.Encode(invoiceQRPayload(order.OrderRef, order.ProductID), qrcode.Medium, 256)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 20)
	pdf.CellFormat(0, 15, "Kirana Order Invoice", "", 1, "C", false, 0, "")
	pdf.Ln(5)

	pdf.SetFont("Arial", "", 12)
	pdf.MultiCell(0, 8, fmt.Sprintf(
		"Order Ref: %s\nProduct: %s\nUnit Price: %.2f\nQuantity: %d\nOrder Date: %s",
		order.OrderRef,
		order.ProductTitle,
		order.UnitPrice,
		order.Quantity,
		order.OrderDate.Format("02 Jan 2006 15:04"),
	), "", "L", false)

	if address != nil {
		pdf.Ln(4)
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(0, 8, "Ship to", "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 12)
		pdf.MultiCell(0, 8, fmt.Sprintf(
			"%s %s\n%s\n%s\n%s, %s %s\n%s",
			address.FirstName, address.LastName,
			address.Line1,
			address.Line2,
			address.City, address.State, address.Pincode,
			address.Country,
		), "", "L", false)
	}

	imgOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", imgOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 150, 40, 40, 40, false, imgOpts, 0, "")

	pdf.SetY(-30)
	pdf.SetFont("Arial", "I", 10)
	pdf.CellFormat(0, 10, "Scan the QR code to verify this invoice.", "T", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
