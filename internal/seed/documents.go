// Package seed provides the sample policy documents loaded into an empty
// knowledge base.
package seed

import (
	domdoc "github.com/cerebro-kb/cerebro/internal/domain/document"
)

// Documents returns the built-in sample document set.
func Documents() []domdoc.Document {
	return []domdoc.Document{
		domdoc.Reconstruct("doc_001", "Annual Leave Policy", "HR Policies",
			`Annual Leave Policy:

• Full-time employees are entitled to 20 days of annual leave per year
• Leave accrues at 1.67 days per month
• Unused leave can be carried forward up to 5 days into the next year
• Leave requests must be submitted at least 2 weeks in advance
• Approval is subject to business needs and team availability
• Public holidays are separate from annual leave entitlement`),

		domdoc.Reconstruct("doc_002", "New Employee Onboarding", "HR Operations",
			`Employee Onboarding Process:

Step 1: Pre-boarding (1 week before start date)
• HR sends welcome email with first-day details
• IT provisions laptop and accounts
• Manager prepares workspace and access cards

Step 2: Day 1
• Welcome orientation at 9 AM
• HR paperwork completion
• IT setup and system access
• Team introduction lunch

Step 3: Week 1
• Department orientation
• Assign onboarding buddy
• Initial training sessions
• Review role expectations

Step 4: Month 1
• Regular check-ins with manager
• Complete mandatory training modules
• 30-day review meeting`),

		domdoc.Reconstruct("doc_003", "Remote Work Policy", "Workplace Policies",
			`Remote Work Policy:

Eligibility:
• Employees must complete 3 months probation
• Role must be suitable for remote work
• Manager approval required

Schedule:
• Hybrid: Up to 3 days remote per week
• Fully remote: Subject to approval and business needs
• Core hours: 10 AM - 3 PM (must be available)

Requirements:
• Stable internet connection (minimum 50 Mbps)
• Dedicated workspace
• Attendance at mandatory in-office meetings
• Response time: Within 2 hours during work hours

Equipment:
• Company provides laptop and necessary software
• Home office stipend: $500 annually`),

		domdoc.Reconstruct("doc_004", "IT Support Guidelines", "IT Operations",
			`IT Support Process:

Self-Service Portal: support.company.com
• Password resets
• Software installation requests
• VPN troubleshooting guides

Helpdesk Contact:
• Email: itsupport@company.com
• Phone: Ext 5500 (8 AM - 6 PM)
• Slack: #it-support

Priority Levels:
• P1 (Critical): System down - 1 hour response
• P2 (High): Major functionality issue - 4 hours
• P3 (Medium): Minor issue - 1 business day
• P4 (Low): Enhancement request - 3 business days

Common Issues:
• VPN connectivity: Restart client, check credentials
• Email issues: Clear cache, check settings
• Laptop problems: Contact helpdesk immediately`),

		domdoc.Reconstruct("doc_005", "Expense Reimbursement", "Finance Policies",
			`Expense Reimbursement Policy:

Eligible Expenses:
• Business travel (flights, hotels, transport)
• Client entertainment (meals, activities)
• Office supplies and equipment
• Professional development courses

Limits:
• Meals: $50 per day domestic, $75 international
• Hotels: Up to $200 per night
• Client entertainment: Requires manager pre-approval

Submission Process:
1. Log into expense portal: expenses.company.com
2. Upload receipts (required for expenses over $25)
3. Submit within 30 days of expense date
4. Manager approval required
5. Payment processed within 2 weeks

Non-eligible:
• Personal expenses
• Alcoholic beverages (unless client entertainment)
• Late fees or penalties`),
	}
}
