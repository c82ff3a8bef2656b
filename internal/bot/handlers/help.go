package handlers

const helpText = `🤖 WhatsApp Contribution Tracker Commands

AddMember <Name> <Category> [Amount] - add a new member
  Categories: Parents (500 KES), GenMillennial/GenZ (300 KES), GenAlpha (50 KES)
MarkPaid <Name> <Month> [Amount] - record a contribution
Report <Month> - monthly contribution report
AddMonth <MonthName> - open a new month
InitDB - seed the roster and months
ListMembers - show all members by category
Help - show this message

Examples:
AddMember Pauline Parents
MarkPaid Pauline Nthenya August 500
Report August
AddMonth September`

// HelpText is the static command reference, also sent for unknown commands.
func HelpText() string { return helpText }
