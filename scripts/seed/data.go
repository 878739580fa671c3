package main

import (
	"fmt"
	"math/rand"
	"slices"
	"time"
)

type customerSeed struct {
	CompanyName string
	ContactName string
	Email       string
	Phone       string
}

type productSeed struct {
	Name        string
	Description string
	PriceCents  int64
	Category    string
}

type saleSeed struct {
	CustomerID int64
	ProductID  int64
	Amount     string
	Quantity   int
	SaleDate   time.Time
	Status     string
}

var sampleCustomers = []customerSeed{
	{"Acme Corporation", "John Smith", "john.smith@acme.com", "+1-555-0123"},
	{"TechStart Solutions", "Sarah Johnson", "sarah@techstart.com", "+1-555-0456"},
	{"Global Industries", "Michael Chen", "mchen@global.com", "+1-555-0789"},
	{"Innovate Labs", "Emily Rodriguez", "emily@innovatelabs.com", "+1-555-0234"},
	{"Digital Dynamics", "David Wilson", "david@digitaldynamics.com", "+1-555-0567"},
	{"Future Systems", "Lisa Thompson", "lisa@futuresystems.com", "+1-555-0890"},
	{"CloudFirst Inc", "Robert Taylor", "robert@cloudfirst.com", "+1-555-0345"},
	{"DataStream Corp", "Jennifer Lee", "jennifer@datastream.com", "+1-555-0678"},
	{"NextGen Technologies", "Christopher Brown", "chris@nextgen.com", "+1-555-0901"},
	{"Smart Solutions LLC", "Amanda Davis", "amanda@smartsolutions.com", "+1-555-0456"},
	{"Enterprise Partners", "Mark Anderson", "mark@enterprisepartners.com", "+1-555-0789"},
	{"Tech Innovators", "Rachel Green", "rachel@techinnovators.com", "+1-555-0123"},
	{"Digital Solutions", "Kevin Martinez", "kevin@digitalsolutions.com", "+1-555-0456"},
	{"Modern Systems", "Nicole White", "nicole@modernsystems.com", "+1-555-0789"},
	{"Agile Enterprises", "Brian Johnson", "brian@agileenterprises.com", "+1-555-0234"},
	{"Cloud Dynamics", "Stephanie Miller", "stephanie@clouddynamics.com", "+1-555-0567"},
	{"Innovation Hub", "Daniel Garcia", "daniel@innovationhub.com", "+1-555-0890"},
	{"Tech Pioneers", "Michelle Clark", "michelle@techpioneers.com", "+1-555-0345"},
	{"Strategic Systems", "Jason Rodriguez", "jason@strategicsystems.com", "+1-555-0678"},
	{"Digital Transformation", "Kimberly Lewis", "kimberly@digitaltransformation.com", "+1-555-0901"},
}

var sampleProducts = []productSeed{
	{"Professional Software License", "Annual enterprise software license with full feature access", 299999, "Software"},
	{"Strategic Consulting Services", "Comprehensive business consulting and strategic planning package", 500000, "Services"},
	{"Enterprise Hardware Package", "Complete hardware setup and installation for enterprise environments", 129999, "Hardware"},
	{"Cloud Infrastructure Setup", "Full cloud migration and infrastructure configuration", 350000, "Services"},
	{"Security Software Suite", "Comprehensive cybersecurity solution with threat monitoring", 420000, "Software"},
	{"Data Analytics Platform", "Advanced analytics and business intelligence platform", 680000, "Software"},
	{"Mobile App Development", "Custom mobile application development and deployment", 850000, "Services"},
	{"Network Infrastructure", "Enterprise-grade networking equipment and configuration", 220000, "Hardware"},
	{"Training and Support", "Comprehensive staff training and ongoing technical support", 180000, "Services"},
	{"Backup and Recovery System", "Automated backup solution with disaster recovery capabilities", 320000, "Software"},
	{"Video Conferencing Solution", "Enterprise video conferencing and collaboration platform", 150000, "Software"},
	{"Custom Integration Services", "API integration and custom software development services", 450000, "Services"},
	{"Server Hardware Package", "High-performance server hardware with installation", 550000, "Hardware"},
	{"Digital Marketing Suite", "Complete digital marketing automation and analytics platform", 280000, "Software"},
	{"IT Maintenance Contract", "Annual IT maintenance and support contract", 200000, "Services"},
}

var saleStatuses = []string{"pending", "completed", "cancelled"}

func formatCents(cents int64) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}

// buildSales generates n random sales dated within the year before now.
// productPrices maps product id to its price in cents.
func buildSales(rng *rand.Rand, n int, customerIDs []int64, productPrices map[int64]int64, now time.Time) []saleSeed {
	if len(customerIDs) == 0 || len(productPrices) == 0 {
		return nil
	}
	productIDs := make([]int64, 0, len(productPrices))
	for id := range productPrices {
		productIDs = append(productIDs, id)
	}
	slices.Sort(productIDs)

	start := now.AddDate(-1, 0, 0)
	window := now.Sub(start)
	out := make([]saleSeed, 0, n)
	for i := 0; i < n; i++ {
		productID := productIDs[rng.Intn(len(productIDs))]
		quantity := rng.Intn(5) + 1
		out = append(out, saleSeed{
			CustomerID: customerIDs[rng.Intn(len(customerIDs))],
			ProductID:  productID,
			Amount:     formatCents(productPrices[productID] * int64(quantity)),
			Quantity:   quantity,
			SaleDate:   start.Add(time.Duration(rng.Int63n(int64(window)))),
			Status:     saleStatuses[rng.Intn(len(saleStatuses))],
		})
	}
	return out
}
