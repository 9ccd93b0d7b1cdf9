// Package report renders assessment records into PDF documents. The
// layout engine is wrapped behind the ReportRenderer interface so it
// can be swapped without touching the handlers.
package report

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"time"

	"asdscreen/internal/model"
	"asdscreen/internal/recommend"

	"github.com/go-pdf/fpdf"
)

// ReportRenderer produces the downloadable report for one assessment.
type ReportRenderer interface {
	Render(a *model.Assessment, recs recommend.Set) ([]byte, error)
}

// Disclaimer is the fixed medical-disclaimer block appended to every
// report.
const Disclaimer = "This assessment report is generated by an AI-powered screening tool and is NOT a clinical diagnosis. " +
	"The results should be used as a reference point for discussions with qualified healthcare professionals. " +
	"All recommendations provided are general guidelines and must be customized by licensed medical practitioners " +
	"based on individual needs, medical history, and comprehensive evaluation.\n\n" +
	"Always consult with:\n" +
	"- Licensed pediatrician or family physician\n" +
	"- Developmental pediatrician or child psychiatrist\n" +
	"- Certified therapists (ABA, OT, Speech, etc.)\n" +
	"- Registered dietitian for nutritional advice\n\n" +
	"Do not:\n" +
	"- Self-diagnose or self-medicate based on this report\n" +
	"- Start any medication without professional prescription\n" +
	"- Discontinue existing treatments without consulting your doctor\n" +
	"- Delay seeking professional medical advice\n\n" +
	"This report is for informational purposes only and does not establish a doctor-patient relationship."

// PDFRenderer renders reports with the fpdf layout engine.
type PDFRenderer struct {
	// UploadsDir is where uploaded images referenced by records live.
	UploadsDir string

	// Compress toggles PDF stream compression. Tests disable it so the
	// text content is assertable in the raw output.
	Compress bool

	// Now supplies the generation timestamp.
	Now func() time.Time
}

// NewPDFRenderer creates a renderer resolving images against uploadsDir.
func NewPDFRenderer(uploadsDir string) *PDFRenderer {
	return &PDFRenderer{
		UploadsDir: uploadsDir,
		Compress:   true,
		Now:        time.Now,
	}
}

var (
	teal     = [3]int{15, 90, 92}
	paleTeal = [3]int{230, 242, 242}
	paleGrey = [3]int{245, 245, 244}
)

// Render produces the PDF bytes for a record. Fields absent from the
// record are defaulted rather than failing, so partial records sourced
// from a degraded store still render.
func (r *PDFRenderer) Render(a *model.Assessment, recs recommend.Set) ([]byte, error) {
	rec := withDefaults(a)

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetCompression(r.Compress)
	pdf.SetMargins(25, 25, 25)
	pdf.SetAutoPageBreak(true, 20)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	generated := r.Now().Format("January 2, 2006 at 3:04 PM")

	// Title block
	pdf.SetFont("Helvetica", "B", 22)
	pdf.SetTextColor(teal[0], teal[1], teal[2])
	pdf.CellFormat(0, 12, "ASD SCREENING ASSESSMENT REPORT", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 6, "Report Generated: "+generated, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Assessment ID: "+rec.ID, "", 1, "L", false, 0, "")
	if rec.Demographic.Name != "" {
		pdf.CellFormat(0, 6, tr("Subject Name: "+rec.Demographic.Name), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	r.embedImage(pdf, rec.ImageFilename)

	// Results summary
	r.heading(pdf, "ASSESSMENT RESULTS")
	summary := [][2]string{
		{"Risk Level:", rec.RiskLevel},
		{"ASD Probability:", fmt.Sprintf("%.1f%%", rec.Probability*100)},
		{"Model Confidence:", fmt.Sprintf("%.1f%%", rec.Confidence*100)},
	}
	for _, row := range summary {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.SetFillColor(paleTeal[0], paleTeal[1], paleTeal[2])
		pdf.CellFormat(55, 9, row[0], "1", 0, "L", true, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(75, 9, row[1], "1", 1, "L", false, 0, "")
	}
	pdf.Ln(6)

	// Demographic table
	r.heading(pdf, "DEMOGRAPHIC INFORMATION")
	name := rec.Demographic.Name
	if name == "" {
		name = "Not provided"
	}
	demo := [][2]string{
		{"Name:", name},
		{"Age:", fmt.Sprintf("%d years", rec.Demographic.Age)},
		{"Gender:", genderString(rec.Demographic.Gender)},
		{"Country:", rec.Demographic.Country},
		{"Jaundice at Birth:", yesNo(rec.Demographic.Jaundice)},
		{"Family History of ASD:", yesNo(rec.Demographic.FamilyHistory)},
		{"Respondent:", rec.Demographic.Respondent},
	}
	for _, row := range demo {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetFillColor(paleGrey[0], paleGrey[1], paleGrey[2])
		pdf.CellFormat(60, 8, row[0], "1", 0, "L", true, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(70, 8, tr(row[1]), "1", 1, "L", false, 0, "")
	}
	pdf.Ln(6)

	// AQ-10 table
	r.heading(pdf, "BEHAVIORAL ASSESSMENT (AQ-10)")
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(teal[0], teal[1], teal[2])
	pdf.SetTextColor(255, 255, 255)
	pdf.CellFormat(22, 8, "Question", "1", 0, "L", true, 0, "")
	pdf.CellFormat(75, 8, "Domain", "1", 0, "L", true, 0, "")
	pdf.CellFormat(33, 8, "Response", "1", 1, "L", true, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(0, 0, 0)
	scores := rec.Behavioral.Scores()
	for i, q := range Questions {
		fill := i%2 == 1
		pdf.SetFillColor(paleGrey[0], paleGrey[1], paleGrey[2])
		pdf.CellFormat(22, 7, q.Key, "1", 0, "L", fill, 0, "")
		pdf.CellFormat(75, 7, q.Label, "1", 0, "L", fill, 0, "")
		pdf.CellFormat(33, 7, yesNo(scores[i]), "1", 1, "L", fill, 0, "")
	}

	// Recommendations
	pdf.AddPage()
	r.heading(pdf, "COMPREHENSIVE RECOMMENDATIONS")
	sections := []struct {
		title string
		items []string
	}{
		{"1. Medical Consultation & Treatment", recs.Medical},
		{"2. Therapeutic Interventions", recs.Therapy},
		{"3. Relaxation & Mindfulness Practices", recs.Relaxation},
		{"4. Lifestyle Modifications", recs.Lifestyle},
		{"5. Nutritional Recommendations", recs.Nutrition},
	}
	for _, section := range sections {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.SetTextColor(teal[0], teal[1], teal[2])
		pdf.CellFormat(0, 8, section.title, "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(0, 0, 0)
		for _, item := range section.items {
			pdf.MultiCell(0, 5.5, tr("• "+item), "", "L", false)
			pdf.Ln(1)
		}
		pdf.Ln(3)
	}

	// Disclaimer
	pdf.AddPage()
	r.heading(pdf, "IMPORTANT MEDICAL DISCLAIMER")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(0, 0, 0)
	pdf.MultiCell(0, 5.5, Disclaimer, "", "L", false)
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "I", 9)
	pdf.CellFormat(0, 6, "Report generated by ASD Screening System | "+generated, "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render report: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *PDFRenderer) heading(pdf *fpdf.Fpdf, text string) {
	pdf.SetFont("Helvetica", "B", 15)
	pdf.SetTextColor(teal[0], teal[1], teal[2])
	pdf.CellFormat(0, 9, text, "", 1, "L", false, 0, "")
	pdf.Ln(2)
}

// embedImage adds the uploaded image when the referenced file exists
// and decodes as an image. Missing, unreadable or corrupt files never
// fail the render.
func (r *PDFRenderer) embedImage(pdf *fpdf.Fpdf, filename string) {
	if filename == "" || r.UploadsDir == "" {
		return
	}
	path := filepath.Join(r.UploadsDir, filename)

	f, err := os.Open(path)
	if err != nil {
		return
	}
	_, format, err := image.DecodeConfig(f)
	f.Close()
	if err != nil {
		return
	}

	opts := fpdf.ImageOptions{ImageType: format, ReadDpi: true}
	pdf.ImageOptions(path, pdf.GetX(), pdf.GetY(), 50, 62, true, opts, 0, "")
	pdf.Ln(4)
}

// withDefaults returns a copy of the record with absent fields filled
// in, matching the degraded-store contract.
func withDefaults(a *model.Assessment) model.Assessment {
	rec := *a
	if rec.RiskLevel == "" {
		rec.RiskLevel = "Unknown"
	}
	if rec.Demographic.Country == "" {
		rec.Demographic.Country = "Unknown"
	}
	if rec.Demographic.Respondent == "" {
		rec.Demographic.Respondent = "Unknown"
	}
	return rec
}

func yesNo(code int) string {
	if code == 1 {
		return "Yes"
	}
	return "No"
}

func genderString(code int) string {
	if code == 0 {
		return "Male"
	}
	return "Female"
}
