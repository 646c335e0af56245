package constant

const EmailTicketConfirmationTemplate = `
Dear %s,

Assalamu alaykum. Your ticket order has been confirmed, alhamdulillah.

Order Details:
------------------------------------------
Reference: %s
Event: %s
Date: %s
Tickets: %d
Total Amount: %s
Payment Method: %s
------------------------------------------

Please present this reference at the entrance. Your tickets are also
available at any time under "My Tickets" on the website.

If you have any questions, please contact the secretariat at
billetterie@masjid-events.org.

Barakallahu fikum,
The Events Team

Note: This is an automated message, please do not reply to this email.
`
