package mail

type OutreachCopyData struct {
	CompanyName string
	Channel     string
	Content     string
}

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}
