package urway

// responseCodes maps gateway response codes to human-readable
// descriptions. This is external reference data published by the gateway,
// not derived behavior.
var responseCodes = map[string]string{
	"000": "Transaction successful",
	"001": "Transaction pending authorization",
	"101": "Invalid merchant or terminal identifier",
	"102": "Invalid terminal password",
	"103": "Invalid request hash",
	"104": "Invalid transaction amount",
	"105": "Invalid or unsupported currency code",
	"106": "Invalid action code",
	"107": "Invalid track id",
	"108": "Duplicate track id",
	"109": "Merchant IP address not registered",
	"110": "Invalid customer email",
	"201": "Transaction declined by issuer",
	"202": "Insufficient funds",
	"203": "Card expired",
	"204": "Invalid card number",
	"205": "Transaction not permitted to cardholder",
	"206": "Suspected fraud",
	"207": "Exceeds withdrawal amount limit",
	"301": "Issuer unavailable",
	"302": "Acquirer gateway timeout",
	"401": "Cardholder authentication failed",
	"402": "3-D Secure enrollment check failed",
	"501": "Transaction not found",
	"502": "Transaction already voided",
	"503": "Transaction already captured",
	"601": "System error, please retry later",
	"701": "Transaction cancelled by cardholder",
}

// DescribeResponseCode returns the gateway's published description for a
// response code, or a generic fallback for codes missing from the table.
func DescribeResponseCode(code string) string {
	if desc, ok := responseCodes[code]; ok {
		return desc
	}
	return "Unrecognized gateway response code"
}
