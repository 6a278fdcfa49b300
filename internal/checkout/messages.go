package checkout

const (
	MsgOrderReceived    = "تم استلام طلبك بنجاح! شكراً لثقتك بنا."
	MsgSubmissionFailed = "حدث خطأ في الإرسال، يرجى المحاولة عبر واتساب."
	BusyLabel           = "جاري إرسال الطلب..."

	currency = "ج.م"
)
