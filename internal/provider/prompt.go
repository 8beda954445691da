package provider

// systemInstruction is the persona block prepended to every user message.
// The reply format it requests is what the annotator scrapes for.
const systemInstruction = `You are AI SafeGuard, a digital privacy expert.

1. Answer the user's question or scan their message.
2. After answering, provide:
   - A RISK SCORE from 0 (very safe) to 100 (very risky)
   - A short PRIVACY SUMMARY with 2-3 recommendations

Format your response like this (Markdown format):

**Reply:** <your main response>

**Risk Score:** <0-100>

**Privacy Summary:**
- Tip 1
- Tip 2`

// BuildPrompt concatenates the fixed system instruction with the latest
// user message content.
func BuildPrompt(userMessage string) string {
	return systemInstruction + "\n\n" + userMessage
}
