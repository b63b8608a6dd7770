package pdf

import "github.com/wyawin/fineksi-invoice/internal/domain/entity"

// labels is the display-string table for one locale. The engine only hands
// the PDF layer a locale tag; every visible string resolves here.
type labels struct {
	invoice            string
	billTo             string
	invoiceNumber      string
	date               string
	dueDate            string
	billingPeriod      string
	serviceDetails     string
	serviceType        string
	usage              string
	rate               string
	amount             string
	tax                string
	totalAmount        string
	totalAmountGrossUp string
	paymentInformation string
	bankName           string
	accountNumber      string
	accountName        string
	taxObjectCode      string
	billingCode        string
	thankYou           string
	paymentDue         string
	paymentDue2        string

	services map[entity.ServiceCategory]string
	free     map[entity.ServiceCategory]string
	minimum  string
}

var translations = map[string]labels{
	"en": {
		invoice:            "INVOICE",
		billTo:             "Bill To",
		invoiceNumber:      "Invoice Number",
		date:               "Date",
		dueDate:            "Due Date",
		billingPeriod:      "Billing Period",
		serviceDetails:     "Service Details",
		serviceType:        "Description",
		usage:              "Qty",
		rate:               "Price",
		amount:             "Amount",
		tax:                "Tax",
		totalAmount:        "Total Amount",
		totalAmountGrossUp: "Total Gross-Up",
		paymentInformation: "Payment Information",
		bankName:           "Bank Name",
		accountNumber:      "Account Number",
		accountName:        "Account Name",
		taxObjectCode:      "Kode Objek Pajak",
		billingCode:        "Kode Billing",
		thankYou:           "Thank you for trusting us!",
		paymentDue:         "Payment is due within",
		paymentDue2:        "days. Please include the invoice number on your payment.",
		services: map[entity.ServiceCategory]string{
			entity.CategoryBankStatement:      "Bank Statement Analysis Usage",
			entity.CategoryCreditHistory:      "Credit History Usage",
			entity.CategoryIncome:             "Income Verification Usage",
			entity.CategoryKYC:                "KYC Verification Usage",
			entity.CategoryDocumentProcessing: "Intelligent Document Processing Usage",
		},
		free: map[entity.ServiceCategory]string{
			entity.CategoryBankStatement:      "Free Bank Statement Analysis Usage",
			entity.CategoryCreditHistory:      "Free Credit History Usage",
			entity.CategoryIncome:             "Free Income Verification Usage",
			entity.CategoryKYC:                "Free KYC Verification Usage",
			entity.CategoryDocumentProcessing: "Free Intelligent Document Processing Usage",
		},
		minimum: "Minimum Commitment Usage",
	},
	"id": {
		invoice:            "FAKTUR",
		billTo:             "Ditagihkan Kepada",
		invoiceNumber:      "Nomor Faktur",
		date:               "Tanggal",
		dueDate:            "Jatuh Tempo",
		billingPeriod:      "Periode Tagihan",
		serviceDetails:     "Detail Layanan",
		serviceType:        "Deskripsi",
		usage:              "Qty",
		rate:               "Harga",
		amount:             "Jumlah",
		tax:                "Pajak",
		totalAmount:        "Total Jumlah",
		totalAmountGrossUp: "Total Gross-Up",
		paymentInformation: "Informasi Pembayaran",
		bankName:           "Nama Bank",
		accountNumber:      "Nomor Rekening",
		accountName:        "Nama Rekening",
		taxObjectCode:      "Kode Objek Pajak",
		billingCode:        "Kode Billing",
		thankYou:           "Terima kasih telah mempercayai kami!",
		paymentDue:         "Pembayaran jatuh tempo dalam",
		paymentDue2:        "hari. Harap sertakan nomor faktur pada pembayaran Anda.",
		services: map[entity.ServiceCategory]string{
			entity.CategoryBankStatement:      "Penggunaan Analisa Rekening Koran",
			entity.CategoryCreditHistory:      "Penggunaan Analisa Sejarah Pinjaman",
			entity.CategoryIncome:             "Penggunaan Verifikasi Pendapatan",
			entity.CategoryKYC:                "Penggunaan Verifikasi KYC",
			entity.CategoryDocumentProcessing: "Penggunaan Intelligent Document Processing",
		},
		free: map[entity.ServiceCategory]string{
			entity.CategoryBankStatement:      "Gratis Penggunaan Analisa Rekening Koran",
			entity.CategoryCreditHistory:      "Gratis Penggunaan Analisa Sejarah Pinjaman",
			entity.CategoryIncome:             "Gratis Penggunaan Verifikasi Pendapatan",
			entity.CategoryKYC:                "Gratis Penggunaan Verifikasi KYC",
			entity.CategoryDocumentProcessing: "Gratis Penggunaan Intelligent Document Processing",
		},
		minimum: "Minimum Komitmen Penggunaan",
	},
}

// labelsFor resolves a locale tag, falling back to English.
func labelsFor(lang string) labels {
	if l, ok := translations[lang]; ok {
		return l
	}
	return translations["en"]
}

// serviceLabel names one derived line in the invoice table.
func (l labels) serviceLabel(line entity.ServiceLine) string {
	switch line.Kind {
	case entity.LineKindMinimumCommitment:
		return l.minimum
	case entity.LineKindFreeCredit:
		return l.free[line.Category]
	default:
		return l.services[line.Category]
	}
}
