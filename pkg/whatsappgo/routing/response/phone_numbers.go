package response

type PhoneNumber struct {
	ID                     string `json:"id,omitempty"`
	VerifiedName           string `json:"verified_name,omitempty"`
	DisplayPhoneNumber     string `json:"display_phone_number,omitempty"`
	QualityRating          string `json:"quality_rating,omitempty"`
	CodeVerificationStatus string `json:"code_verification_status,omitempty"`
}

type PhoneNumbersResponse struct {
	Data   []PhoneNumber `json:"data,omitempty"`
	Paging Paging        `json:"paging,omitempty"`
}
