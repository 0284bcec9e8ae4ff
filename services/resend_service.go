package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
)

// ResendClient handles email sending via Resend API
type ResendClient struct {
	apiKey string
	from   string
}

// NewResendClient creates a new Resend client. Returns an error when
// the API key is missing so the server can run without email
// configured.
func NewResendClient() (*ResendClient, error) {
	apiKey := os.Getenv("RESEND_API_KEY")
	if apiKey == "" {
		return nil, errors.New("RESEND_API_KEY environment variable not set")
	}

	from := os.Getenv("RESEND_FROM_EMAIL")
	if from == "" {
		from = "noreply@sonaamoda.shop" // Default from address
	}

	return &ResendClient{
		apiKey: apiKey,
		from:   from,
	}, nil
}

// send posts one email payload to the Resend API.
func (r *ResendClient) send(payload map[string]interface{}) error {
	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		log.Printf("[resend] failed to marshal payload: %v", err)
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequest("POST", "https://api.resend.com/emails", bytes.NewBuffer(jsonPayload))
	if err != nil {
		log.Printf("[resend] failed to create request: %v", err)
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", r.apiKey))
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		log.Printf("[resend] failed to send request: %v", err)
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("[resend] failed to read response: %v", err)
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		log.Printf("[resend] api returned status %d: %s", resp.StatusCode, string(body))
		return fmt.Errorf("resend api error: status %d", resp.StatusCode)
	}
	return nil
}

// OrderConfirmationEmailData holds data for the order confirmation email
type OrderConfirmationEmailData struct {
	CustomerName  string
	CustomerEmail string
	OrderNumber   string
	OrderDate     string
	Items         []OrderEmailItem
	Subtotal      float64
	Discount      float64
	ShippingCost  float64
	Tax           float64
	TotalAmount   float64
}

// OrderEmailItem represents one line in the order confirmation email
type OrderEmailItem struct {
	ProductName string
	Quantity    int
	Price       float64
	Subtotal    float64
}

// SendOrderConfirmationEmail sends the post-checkout confirmation via Resend
func (r *ResendClient) SendOrderConfirmationEmail(data OrderConfirmationEmailData) error {
	var itemsRows strings.Builder
	for _, item := range data.Items {
		itemsRows.WriteString(fmt.Sprintf(`
      <tr>
        <td style="padding: 8px 0; font-size: 14px; color: #262622;">%s</td>
        <td style="padding: 8px 0; font-size: 14px; text-align: right; color: #262622;">%d</td>
        <td style="padding: 8px 0; font-size: 14px; text-align: right; color: #262622;">$%.2f</td>
        <td style="padding: 8px 0; font-size: 14px; text-align: right; font-weight: 600; color: #262622;">$%.2f</td>
      </tr>
    `, item.ProductName, item.Quantity, item.Price, item.Subtotal))
	}

	discountRow := ""
	if data.Discount > 0 {
		discountRow = fmt.Sprintf(`
    <tr>
      <td colspan="3" style="padding: 6px 0; font-size: 14px; color: #79776d;">Discount</td>
      <td style="padding: 6px 0; font-size: 14px; text-align: right; color: #262622;">-$%.2f</td>
    </tr>
    `, data.Discount)
	}

	greeting := "Hello"
	if data.CustomerName != "" {
		greeting = "Hello " + data.CustomerName
	}

	htmlBody := fmt.Sprintf(`
<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Order %s confirmed</title>
</head>
<body style="margin: 0; padding: 0; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', 'Roboto', sans-serif; background-color: #fafaf7; line-height: 1.5; padding: 16px;">
  <table width="100%%" cellpadding="0" cellspacing="0" border="0" style="max-width: 700px; margin: auto; background: #ffffff; padding: 24px;">
    <tr>
      <td style="border-bottom: 1px solid #e5e5e0; padding-bottom: 16px;">
        <h1 style="margin: 0; font-size: 26px; font-weight: bold; color: #262622;">SONAA MODA STYLE</h1>
        <p style="margin: 4px 0; font-size: 14px; color: #79776d;">Thank you for your order</p>
      </td>
    </tr>

    <tr>
      <td style="padding: 16px 0;">
        <p style="margin: 0; font-size: 14px; color: #262622;">%s,</p>
        <p style="margin: 8px 0; font-size: 14px; color: #262622;">
          We've received your order <strong>%s</strong> placed on %s. We'll let you know as soon as it ships.
        </p>
      </td>
    </tr>

    <tr>
      <td style="padding: 16px 0; border-top: 1px solid #e5e5e0; border-bottom: 1px solid #e5e5e0;">
        <table width="100%%" cellpadding="0" cellspacing="0" border="0">
          <thead>
            <tr>
              <th style="text-align: left; font-size: 12px; text-transform: uppercase; color: #262622; padding-bottom: 8px;">Item</th>
              <th style="text-align: right; font-size: 12px; text-transform: uppercase; color: #262622; padding-bottom: 8px;">Qty</th>
              <th style="text-align: right; font-size: 12px; text-transform: uppercase; color: #262622; padding-bottom: 8px;">Price</th>
              <th style="text-align: right; font-size: 12px; text-transform: uppercase; color: #262622; padding-bottom: 8px;">Total</th>
            </tr>
          </thead>
          <tbody>
            %s
          </tbody>
        </table>
      </td>
    </tr>

    <tr>
      <td style="padding: 16px 0;">
        <table align="right" width="300" cellpadding="0" cellspacing="0" border="0">
          <tr>
            <td style="font-size: 14px; color: #79776d;">Subtotal</td>
            <td style="text-align: right; font-size: 14px; color: #262622;">$%.2f</td>
          </tr>
          %s
          <tr>
            <td style="font-size: 14px; color: #79776d;">Shipping</td>
            <td style="text-align: right; font-size: 14px; color: #262622;">$%.2f</td>
          </tr>
          <tr>
            <td style="font-size: 14px; color: #79776d;">Tax</td>
            <td style="text-align: right; font-size: 14px; color: #262622;">$%.2f</td>
          </tr>
          <tr>
            <td style="font-size: 14px; font-weight: bold; border-top: 1px solid #e5e5e0; padding-top: 8px;">Total</td>
            <td style="text-align: right; font-size: 16px; font-weight: bold; color: #262622; border-top: 1px solid #e5e5e0; padding-top: 8px;">$%.2f</td>
          </tr>
        </table>
      </td>
    </tr>

    <tr>
      <td style="padding: 16px 0; border-top: 1px solid #e5e5e0;">
        <p style="font-size: 14px; font-weight: bold; color: #262622;">Thank you for shopping with us!</p>
        <p style="font-size: 14px; color: #79776d;">© 2026 Sonaa Moda Style. All rights reserved.</p>
      </td>
    </tr>

  </table>
</body>
</html>
`, data.OrderNumber,
		greeting, data.OrderNumber, data.OrderDate,
		itemsRows.String(),
		data.Subtotal, discountRow, data.ShippingCost, data.Tax, data.TotalAmount,
	)

	payload := map[string]interface{}{
		"from":    r.from,
		"to":      data.CustomerEmail,
		"subject": fmt.Sprintf("Your Sonaa Moda order %s is confirmed", data.OrderNumber),
		"html":    htmlBody,
	}

	if err := r.send(payload); err != nil {
		return err
	}
	log.Printf("[resend] order confirmation sent to %s for order %s", data.CustomerEmail, data.OrderNumber)
	return nil
}

// ContactEmailData holds a contact form submission forwarded to the shop inbox
type ContactEmailData struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// SendContactEmail forwards a contact form submission via Resend
func (r *ResendClient) SendContactEmail(data ContactEmailData) error {
	to := os.Getenv("CONTACT_INBOX_EMAIL")
	if to == "" {
		to = "hello@sonaamoda.shop"
	}

	htmlBody := fmt.Sprintf(`
<!DOCTYPE html>
<html lang="en">
<body style="margin: 0; padding: 16px; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', 'Roboto', sans-serif; background-color: #fafaf7; line-height: 1.5;">
  <table width="100%%" cellpadding="0" cellspacing="0" border="0" style="max-width: 600px; margin: auto; background: #ffffff; padding: 24px;">
    <tr>
      <td style="border-bottom: 1px solid #e5e5e0; padding-bottom: 12px;">
        <h2 style="margin: 0; font-size: 18px; color: #262622;">New contact message</h2>
      </td>
    </tr>
    <tr>
      <td style="padding: 12px 0;">
        <p style="margin: 4px 0; font-size: 14px; color: #262622;"><strong>From:</strong> %s &lt;%s&gt;</p>
        <p style="margin: 4px 0; font-size: 14px; color: #262622;"><strong>Subject:</strong> %s</p>
      </td>
    </tr>
    <tr>
      <td style="padding: 12px 0; border-top: 1px solid #e5e5e0;">
        <p style="margin: 0; font-size: 14px; color: #262622; white-space: pre-wrap;">%s</p>
      </td>
    </tr>
  </table>
</body>
</html>
`, data.Name, data.Email, data.Subject, data.Message)

	payload := map[string]interface{}{
		"from":     r.from,
		"to":       to,
		"reply_to": data.Email,
		"subject":  fmt.Sprintf("[Contact] %s", data.Subject),
		"html":     htmlBody,
	}

	if err := r.send(payload); err != nil {
		return err
	}
	log.Printf("[resend] contact message forwarded for %s", data.Email)
	return nil
}
