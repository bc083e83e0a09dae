package usecase

// Log prefixes
const (
	LogPrefixConverse  = "internal.advisor.Converse"
	LogPrefixRecommend = "internal.advisor.Recommend"
)

// Questionnaire messages
const (
	WelcomeMessage = "As you want to buy insurance, please answer a few questions so that I can suggest plans suited for you."

	ReplyNumberFormat = "Please enter a whole number."
	ReplyNumberBounds = "Please enter a number between %d and %d."
	ReplySingleChoice = "Please choose one of: %s."
	ReplyMultiChoice  = "Please choose from: %s (separate multiple choices with commas)."
)

// Recommendation configuration
const (
	RecommendTemperature = 0.0
	RecommendMaxTokens   = 3000

	// ApologyMessage is shown when recommendation generation fails. The
	// session still completes; the user may retry or book a consultation.
	ApologyMessage = "Xin lỗi, đã có lỗi xảy ra trong quá trình tạo đề xuất. Vui lòng thử lại sau hoặc đặt lịch tư vấn trực tiếp với chuyên viên của chúng tôi."

	PromptRecommendSystem = `You are an MB Ageas Life insurance specialist. Your task is to analyze the customer profile and recommend suitable insurance products. Please:
1. Focus on the customer's specific needs and circumstances
2. Recommend relevant products from the provided product information
3. Explain why each product is suitable for their situation
4. Present all information in Vietnamese language
5. Keep explanations clear and concise`

	PromptRecommendUser = `Customer Profile:
%s

Product Information:
%s

Vui lòng đề xuất các sản phẩm bảo hiểm phù hợp và giải thích lý do lựa chọn:`
)

// ProductCatalog is the static fallback catalog interpolated into every
// recommendation request.
const ProductCatalog = `Life Insurance Products:
1. "An Tâm Tài Chính" (Financial Peace of Mind)
- Bảo hiểm tử kỳ với quyền lợi bảo vệ toàn diện
- Sum assured up to 30 times annual income
- Premium options: Monthly, Quarterly, Semi-annual, Annual
- Entry age: 18-65 years

2. "Phúc Bảo An" (Secure Prosperity)
- Bảo hiểm trọn đời với tích lũy
- Death benefit: 100% sum assured plus accumulated bonuses
- Premium payment term: 10, 15, 20 years
- Entry age: 0-65 years

Health Insurance Products:
1. "Sống Khỏe" (Healthy Living)
- Bảo hiểm bệnh hiểm nghèo toàn diện
- Covers 45 critical illnesses
- Lump sum payment up to 2 billion VND
- Premium payment term: 10-20 years

Education Plans:
1. "Học Vấn Tương Lai" (Future Education)
- Kế hoạch giáo dục với quyền lợi bảo vệ
- Guaranteed education fund
- Flexible premium payment terms
- Entry age: 0-15 years`

// Vietnamese labels for the customer profile block, keyed by question key.
var profileLabels = map[string]string{
	"Age":               "Tuổi",
	"MaritalStatus":     "Tình trạng hôn nhân",
	"HasChildren":       "Có con",
	"Income":            "Thu nhập",
	"PaymentPreference": "Phương thức đóng phí",
	"InsuranceNeeds":    "Nhu cầu bảo hiểm",
	"HealthConcerns":    "Các vấn đề sức khỏe quan tâm",
}

// Small talk configuration
const (
	SalesTemperature = 0.7
	SalesMaxTokens   = 512

	PromptSalesPersona = `You are a friendly and empathetic life insurance sales agent. Your primary goal is to engage in a warm conversation with the customer and determine if they want to buy life insurance or learn more about it. In 50 words your approach should be:

1. Build rapport and make the customer feel comfortable. Keep your conversation short.
2. Listen actively and respond to the customer's comments or questions.
3. Provide brief, easy-to-understand information about life insurance when appropriate.
4. Directly, but gently, ask if the customer is interested in purchasing life insurance or if they want to learn more about it.

Be natural, patient, and avoid being pushy. Your responses should be conversational and always end by asking if the customer wants to buy life insurance or learn more about it. Answer in the customer's language.`

	// SalesFallbackReply is the canned line used when generation fails.
	SalesFallbackReply = "Cảm ơn anh/chị đã quan tâm đến bảo hiểm nhân thọ. Anh/chị muốn tìm hiểu thêm về sản phẩm hay bắt đầu tư vấn nhu cầu ngay ạ? (Thank you for your interest in life insurance — would you like to learn more, or start a quick needs assessment?)"
)
