package bill

import (
	"fmt"
	"hash/fnv"
	"strings"

	"payoo.app/payment/model"
)

var amountRanges = map[model.BillType][2]int64{
	model.BillTypeElectric: {150_000, 400_000},
	model.BillTypeWater:    {80_000, 120_000},
	model.BillTypeTelecom:  {120_000, 280_000},
	model.BillTypeInternet: {200_000, 300_000},
}

var unknownTypeRange = [2]int64{100_000, 200_000}

const telecomWithoutPhoneAmount = 150_000

type directoryEntry struct {
	name    string
	address string
}

var electricCustomers = map[string]directoryEntry{
	"PE001234567": {"TRẦN VĂN MINH", "123 Nguyễn Huệ, P.Bến Nghé, Q.1, TP.HCM"},
	"PE002345678": {"NGUYỄN THỊ LAN", "456 Lê Lợi, P.Bến Thành, Q.1, TP.HCM"},
	"PE003456789": {"LÊ HOÀNG NAM", "789 Hai Bà Trưng, P.Đa Kao, Q.1, TP.HCM"},
	"HN001234567": {"PHẠM THỊ HƯƠNG", "321 Hoàn Kiếm, P.Hoàn Kiếm, Q.Hoàn Kiếm, Hà Nội"},
	"HN002345678": {"VŨ ĐÌNH KHANG", "654 Tràng Tiền, P.Tràng Tiền, Q.Hoàn Kiếm, Hà Nội"},
}

var waterCustomers = map[string]directoryEntry{
	"SW001234567": {"ĐẶNG VĂN HÙNG", "15 Nguyễn Thị Minh Khai, P.Đa Kao, Q.1, TP.HCM"},
	"SW002345678": {"BÙI THỊ MAI", "27 Pasteur, P.Nguyễn Thái Bình, Q.1, TP.HCM"},
	"HW001234567": {"HOÀNG VĂN THÀNH", "42 Phố Huế, P.Phố Huế, Q.Hai Bà Trưng, Hà Nội"},
	"1W001234567": {"TRỊNH THỊ LINH", "88 Lý Thường Kiệt, P.Trần Hưng Đạo, Q.Hoàn Kiếm, Hà Nội"},
}

var internetCustomers = map[string]directoryEntry{
	"FPT001234567": {"TRỊNH VĂN THẮNG", "45 Nguyễn Du, P.Bến Nghé, Q.1, TP.HCM"},
	"VNP001234567": {"NGUYỄN THỊ PHƯƠNG", "67 Điện Biên Phủ, P.Đa Kao, Q.1, TP.HCM"},
	"VTN001234567": {"LÊ MINH TUẤN", "89 Lê Duẩn, P.Bến Nghé, Q.1, TP.HCM"},
	"CMC001234567": {"ĐẶNG THỊ HỒNG", "12 Bà Huyện Thanh Quan, P.Võ Thị Sáu, Q.3, TP.HCM"},
}

// Telecom subscribers are keyed by the last four digits of the phone number.
var telecomSubscribers = map[string]string{
	"0123": "NGUYỄN VĂN CƯỜNG",
	"0456": "TRẦN THỊ THUỲ",
	"0789": "LÊ VĂN ĐỨC",
	"0321": "PHẠM THỊ HOA",
	"0654": "VŨ MINH TÂM",
}

func (b *business) synthetic(query model.BillQuery) *model.BillRecord {
	return model.NewBillRecord(query, b.syntheticFields(query), model.BillSourceSynthetic)
}

// syntheticFields derives a bill from the query alone, so repeated lookups of the
// same customer agree.
func (b *business) syntheticFields(query model.BillQuery) model.BillFields {
	today := b.now()
	f := model.BillFields{
		Period:  fmt.Sprintf("Tháng %02d/%d", today.Month(), today.Year()),
		DueDate: today.AddDate(0, 0, 15).Format("2006-01-02"),
	}

	code := query.CustomerCode
	switch query.BillType {
	case model.BillTypeElectric:
		f.CustomerName, f.Address = lookupDirectory(electricCustomers, code,
			"KHÁCH HÀNG #"+code, "Địa chỉ khách hàng "+code)
		f.Amount = syntheticAmount(code, amountRanges[model.BillTypeElectric])
	case model.BillTypeWater:
		f.CustomerName, f.Address = lookupDirectory(waterCustomers, code,
			"KHÁCH HÀNG NƯỚC #"+code, "Địa chỉ khách hàng nước "+code)
		f.Amount = syntheticAmount(code, amountRanges[model.BillTypeWater])
	case model.BillTypeInternet:
		f.CustomerName, f.Address = lookupDirectory(internetCustomers, code,
			"KHÁCH HÀNG INTERNET #"+code, "Địa chỉ khách hàng internet "+code)
		f.Amount = syntheticAmount(code, amountRanges[model.BillTypeInternet])
	case model.BillTypeTelecom:
		phone := strings.TrimSpace(query.PhoneNumber)
		f.CustomerName = telecomName(phone)
		f.Address = telecomAddress(phone)
		f.Amount = telecomWithoutPhoneAmount
		if phone != "" {
			f.Amount = syntheticAmount(phone, amountRanges[model.BillTypeTelecom])
		}
	default:
		f.CustomerName = "KHÁCH HÀNG #" + code
		f.Address = "Địa chỉ không xác định"
		f.Amount = syntheticAmount(code, unknownTypeRange)
	}
	return f
}

func lookupDirectory(dir map[string]directoryEntry, code, defaultName, defaultAddress string) (string, string) {
	if e, ok := dir[code]; ok {
		return e.name, e.address
	}
	return defaultName, defaultAddress
}

func telecomName(phone string) string {
	if len(phone) < 10 {
		return "CHỦ THUÊ BAO"
	}
	if name, ok := telecomSubscribers[phone[len(phone)-4:]]; ok {
		return name
	}
	return "CHỦ THUÊ BAO " + phone
}

func telecomAddress(phone string) string {
	switch {
	case strings.HasPrefix(phone, "024"):
		return "Hà Nội"
	case strings.HasPrefix(phone, "028"):
		return "TP.Hồ Chí Minh"
	default:
		return "Theo địa chỉ đăng ký thuê bao"
	}
}

// syntheticAmount maps key onto [base, base+span) with FNV-1a.
func syntheticAmount(key string, r [2]int64) int64 {
	h := fnv.New32a()
	h.Write([]byte(key))
	return r[0] + int64(h.Sum32())%r[1]
}
