package export

import (
	"fmt"
	"strconv"
	"time"

	"github.com/Dan9191/rent-portal/internal/models"
	"github.com/beevik/etree"
)

// RentRollXML renders rows as <RentRoll><Lease id="..">..</Lease></RentRoll>.
func RentRollXML(rows []models.RentRollItem, generatedAt time.Time) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("RentRoll")
	root.CreateAttr("generatedAt", generatedAt.UTC().Format(time.RFC3339))
	root.CreateAttr("count", strconv.Itoa(len(rows)))

	for _, r := range rows {
		lease := root.CreateElement("Lease")
		lease.CreateAttr("id", strconv.FormatInt(r.LeaseID, 10))
		lease.CreateAttr("status", string(r.Status))

		property := lease.CreateElement("Property")
		property.CreateAttr("id", strconv.FormatInt(r.PropertyID, 10))
		property.CreateElement("Title").SetText(r.PropertyTitle)
		property.CreateElement("Address").SetText(r.PropertyAddress)

		lease.CreateElement("Tenant").SetText(r.TenantName)

		rent := lease.CreateElement("Rent")
		rent.CreateAttr("currency", r.Currency)
		rent.SetText(r.RentAmount.String())

		fin := r.Financials
		f := lease.CreateElement("Financials")
		f.CreateElement("TotalPaid").SetText(fin.TotalPaid.String())
		f.CreateElement("TotalDue").SetText(fin.TotalDue.String())
		if fin.LastPaymentDate != nil {
			p := f.CreateElement("LastPayment")
			p.CreateAttr("date", timestampString(fin.LastPaymentDate))
			p.SetText(fin.LastPaymentAmount.String())
		}
		if fin.NextDueDate != nil {
			n := f.CreateElement("NextDue")
			n.CreateAttr("date", dateString(fin.NextDueDate))
			n.CreateAttr("daysUntilDue", strconv.Itoa(fin.DaysUntilDue))
			n.SetText(fin.NextDueAmount.String())
		}
	}

	doc.Indent(2)
	b, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("failed to write rent roll xml: %w", err)
	}
	return b, nil
}
