// Package assets provisions sample attachment files. Payloads are embedded
// as minimal valid documents and copied to temporary storage; transactions
// and items reference the copies only as opaque handles.
package assets

import (
	"fmt"
	"os"

	"github.com/stubbank/stubbank/internal/model"
)

// minimalPNG is a 1x1 transparent PNG.
var minimalPNG = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a,
	0x00, 0x00, 0x00, 0x0d, 0x49, 0x48, 0x44, 0x52,
	0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4,
	0x89, 0x00, 0x00, 0x00, 0x0a, 0x49, 0x44, 0x41,
	0x54, 0x78, 0x9c, 0x63, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0d, 0x0a, 0x2d, 0xb4, 0x00,
	0x00, 0x00, 0x00, 0x49, 0x45, 0x4e, 0x44, 0xae,
	0x42, 0x60, 0x82,
}

// minimalPDF is an empty single-page PDF document.
var minimalPDF = []byte("%PDF-1.4\n" +
	"1 0 obj<</Type/Catalog/Pages 2 0 R>>endobj\n" +
	"2 0 obj<</Type/Pages/Kids[3 0 R]/Count 1>>endobj\n" +
	"3 0 obj<</Type/Page/Parent 2 0 R/MediaBox[0 0 595 842]>>endobj\n" +
	"trailer<</Root 1 0 R>>\n" +
	"%%EOF\n")

// Invoice copies the sample invoice to a temp file and returns its handle.
func Invoice() (model.FileRef, error) {
	path, err := provision("stubbank_invoice_*.pdf", minimalPDF)
	if err != nil {
		return model.FileRef{}, err
	}
	return model.FileRef{
		Type:  model.FileInvoice,
		Label: "Invoice",
		MIME:  "application/pdf",
		Path:  path,
	}, nil
}

// ProductImage copies a sample product image to a temp file.
func ProductImage() (model.FileRef, error) {
	path, err := provision("stubbank_product_*.png", minimalPNG)
	if err != nil {
		return model.FileRef{}, err
	}
	return model.FileRef{
		Type:  model.FileImage,
		Label: "Product cover",
		MIME:  "image/png",
		Path:  path,
	}, nil
}

// LoyaltyCover copies the sample loyalty-card cover image to a temp file.
func LoyaltyCover() (model.FileRef, error) {
	path, err := provision("stubbank_loyalty_*.png", minimalPNG)
	if err != nil {
		return model.FileRef{}, err
	}
	return model.FileRef{
		Type:  model.FileImage,
		Label: "Card cover",
		MIME:  "image/png",
		Path:  path,
	}, nil
}

func provision(pattern string, payload []byte) (string, error) {
	f, err := os.CreateTemp("", pattern)
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(payload); err != nil {
		return "", fmt.Errorf("writing sample payload: %w", err)
	}
	return f.Name(), nil
}
