package router

// Log prefixes
const (
	LogPrefixClassify = "internal.router.Classify"
)

// Router prompts
const (
	PromptRouterSystem = `Bạn là Semantic Router của trợ lý tư vấn bảo hiểm nhân thọ. Phân tích tin nhắn sau và xác định ý định (intent) của người dùng.

Tin nhắn hiện tại: "%s"

Các intent có thể:
1. general_interest: Chào hỏi, trò chuyện thông thường, quan tâm chung về bảo hiểm
2. product_info: Hỏi thông tin chi tiết về sản phẩm bảo hiểm, quyền lợi, điều khoản
3. purchase_intent: Muốn mua bảo hiểm, bắt đầu tư vấn nhu cầu
4. recommendation_request: Yêu cầu đề xuất sản phẩm phù hợp với bản thân

Trả về JSON với format:
{
  "intent": "general_interest|product_info|purchase_intent|recommendation_request",
  "confidence": 0-100,
  "reasoning": "Giải thích ngắn gọn"
}`
)

// Router configuration
const (
	RouterTemperature        = 0.1
	RouterFallbackConfidence = 50
)

// Error messages
const (
	ErrMsgLLMCallFailed   = "LLM call failed, falling back to general_interest"
	ErrMsgJSONParseFailed = "Failed to parse JSON, trying label match"
	ErrMsgEmptyResponse   = "Empty LLM response, falling back to general_interest"
	ErrMsgUnknownIntent   = "Unknown intent label, falling back to general_interest"
)

// Fallback reasons
const (
	ReasonServiceError  = "Fallback due to service error"
	ReasonParsingError  = "Fallback due to parsing error"
	ReasonEmptyResponse = "Fallback due to empty response"
	ReasonLabelMatch    = "Matched label from raw response text"
)
