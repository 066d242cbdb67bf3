// Package tickets renders e-ticket PDFs and QR payloads for bookings.
package tickets

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"travelbook/src/lib"
	"travelbook/src/models"
	"travelbook/src/utils"

	"github.com/phpdave11/gofpdf"
	"github.com/yeqown/go-qrcode"
)

var ErrInvalidPayload = errors.New("invalid ticket code or QR payload")

var plainCode = regexp.MustCompile(`^\d{6}$`)

type Generator struct {
	key []byte
}

func NewGenerator(secret string) *Generator {
	return &Generator{key: utils.DeriveKey(secret)}
}

// QRPayload is the encrypted ticket code printed in the QR image.
func (g *Generator) QRPayload(ticketCode string) (string, error) {
	return utils.EncryptMessage(g.key, ticketCode)
}

// ResolveCode accepts a plain 6-digit code or a scanned QR payload.
func (g *Generator) ResolveCode(input string) (string, error) {
	input = strings.TrimSpace(input)
	if plainCode.MatchString(input) {
		return input, nil
	}
	code, err := utils.DecryptMessage(g.key, input)
	if err != nil || !plainCode.MatchString(*code) {
		return "", ErrInvalidPayload
	}
	return *code, nil
}

func (g *Generator) qrImage(ticketCode string) ([]byte, error) {
	payload, err := g.QRPayload(ticketCode)
	if err != nil {
		return nil, err
	}
	qrc, err := qrcode.New(payload)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := qrc.SaveTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func money(v float64) string {
	return fmt.Sprintf("INR %.2f", v)
}

func (g *Generator) PDF(b models.Booking) ([]byte, error) {
	qr, err := g.qrImage(b.TicketCode)
	if err != nil {
		return nil, fmt.Errorf("rendering qr code: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("E-Ticket "+b.TicketCode, false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "E-TICKET")
	pdf.Ln(12)

	pdf.RegisterImageOptionsReader("qr", gofpdf.ImageOptions{ImageType: "JPG"}, bytes.NewReader(qr))
	pdf.ImageOptions("qr", 150, 15, 45, 45, false, gofpdf.ImageOptions{ImageType: "JPG"}, 0, "")

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		"Ticket code : " + b.TicketCode,
		fmt.Sprintf("Service     : %s %s", b.Carrier, b.ServiceNumber),
		fmt.Sprintf("Route       : %s - %s", b.Origin, b.Destination),
		fmt.Sprintf("Date        : %s %s", b.Date, b.DepartureTime),
	}
	if b.Class != "" {
		lines = append(lines, "Class       : "+string(b.Class))
	}
	lines = append(lines, "Status      : "+string(b.Status))
	for _, s := range lines {
		pdf.Cell(0, 7, s)
		pdf.Ln(7)
	}
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(120, 8, "Passenger", "B", 0, "", false, 0, "")
	pdf.CellFormat(40, 8, "Seat", "B", 1, "", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	for _, p := range b.Passengers {
		pdf.CellFormat(120, 7, p.Passenger.Name, "", 0, "", false, 0, "")
		pdf.CellFormat(40, 7, p.Seat, "", 1, "", false, 0, "")
	}
	pdf.Ln(6)

	row := func(label, value string) {
		pdf.CellFormat(120, 7, label, "", 0, "", false, 0, "")
		pdf.CellFormat(40, 7, value, "", 1, "R", false, 0, "")
	}
	row("Base fare", money(b.Fare.Base))
	if b.Fare.Fees > 0 {
		row("Fees", money(b.Fare.Fees))
	}
	row(fmt.Sprintf("GST (%g%%)", b.Fare.GSTRate), money(b.Fare.GST))
	if b.Fare.Discount > 0 {
		row("Discount", "-"+money(b.Fare.Discount))
	}
	pdf.SetFont("Helvetica", "B", 12)
	row("Total", money(b.Fare.Total))

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Present this ticket and a valid photo ID at boarding.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func FileName(b models.Booking) string {
	return fmt.Sprintf("eticket-%s.pdf", b.TicketCode)
}

// Attachment wraps PDF for the confirmation email.
func (g *Generator) Attachment(b models.Booking) (*lib.Attachment, error) {
	data, err := g.PDF(b)
	if err != nil {
		return nil, err
	}
	return &lib.Attachment{Name: FileName(b), Data: data}, nil
}
