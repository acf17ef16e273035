package locale

import "github.com/sandevgo/findoc/internal/core"

// Messages is the set of user-facing strings for one display language.
type Messages struct {
	Welcome           string
	Help              string
	Processing        string
	UnsupportedFormat string
	ProcessingError   string
	GeneralError      string
	Greeting          string
	SendDocument      string
	LanguageChanged   string
}

// Get returns the message set for lang, falling back to English for any
// language without a table entry.
func Get(lang core.Language) Messages {
	if m, ok := table[lang]; ok {
		return m
	}
	return table[core.LanguageEnglish]
}

var table = map[core.Language]Messages{
	core.LanguageEnglish: {
		Welcome: "👋 Welcome to the Financial Document Assistant Bot!\n\n" +
			"I'm a specialized financial assistant that can help you process and analyze PDF and Excel documents.\n\n" +
			"How to use me:\n" +
			"1. Upload a PDF or Excel file and ask questions about it\n" +
			"2. Or use /batch to process multiple files and analyze them together\n\n" +
			"Commands:\n" +
			"/start - Start the bot\n" +
			"/help - Show this help message\n" +
			"/batch - Process multiple files together\n" +
			"/english - Switch to English\n" +
			"/burmese - မြန်မာဘာသာဖြင့် ဆက်လက်ဆောင်ရွက်ရန်",
		Help: "🤖 Financial Document Assistant Bot Help\n\n" +
			"Commands:\n" +
			"/start - Start the bot\n" +
			"/help - Show this help message\n" +
			"/batch - Process multiple files together\n" +
			"/batch_analyze - Analyze all uploaded files together\n" +
			"/batch_clear - Clear the current batch\n" +
			"/batch_status - Check the status of your batch\n" +
			"/search <query> - Search the web for current information\n" +
			"/english - Switch to English\n" +
			"/burmese - Switch to Burmese\n\n" +
			"How to use:\n" +
			"1. Upload a PDF or Excel file and ask questions about it\n" +
			"2. Or use /batch to process multiple files:\n" +
			"   - Type /batch to start batch mode\n" +
			"   - Upload multiple files\n" +
			"   - Type /batch_analyze to analyze them together\n\n" +
			"Supported file types:\n" +
			"• PDF (.pdf)\n" +
			"• Excel (.xls, .xlsx)\n\n" +
			"Examples of questions you can ask:\n" +
			"• \"What is the total revenue?\"\n" +
			"• \"List all transactions over $1000\"\n" +
			"• \"Show me all expense categories\"\n" +
			"• \"What was the highest expense?\"\n" +
			"• \"Compare the revenue in these files\"\n" +
			"• \"Find duplicate entries between documents\"\n\n" +
			"Just upload your document(s) and ask me anything!\n\n" +
			"Note: I automatically search the web for current financial information when needed.",
		Processing:        "📥 Processing your document... Please wait.",
		UnsupportedFormat: "❌ Unsupported file format. Please send PDF or Excel files only.",
		ProcessingError:   "❌ Error processing the file. Please try again.",
		GeneralError:      "❌ Sorry, something went wrong. Please try again later.",
		Greeting:          "👋 Hi! I'm your Financial Document Assistant. Upload a PDF or Excel file, then ask me questions about it!",
		SendDocument:      "Please upload a PDF or Excel file, then ask me questions about it!",
		LanguageChanged:   "🇺🇸 Language changed to English!",
	},
	core.LanguageBurmese: {
		Welcome: "👋 မင်္ဂလာပါ Financial Document Assistant Bot မှ ကြိုဆိုပါတယ်!\n\n" +
			"ကျွန်တော်သည် PDF နှင့် Excel ဖိုင်များကို စိစစ်ပေးနိုင်သော ငွေကြေးဆိုင်ရာ ကူညီသူ အထူးလုပ်ဖော်ပါ။\n\n" +
			"အသုံးပြုနည်း:\n" +
			"၁။ PDF သို့မဟုတ် Excel ဖိုင်ကို ပို့ပြီး သင့်ဖိုင်အကြောင်း မေးပါ\n" +
			"၂။ သို့မဟုတ် ဖိုင်များစုစည်း၍ စိစစ်ရန် /batch ကို အသုံးပြုပါ\n\n" +
			"Commands:\n" +
			"/start - Bot ကို စတင်အသုံးပြုရန်\n" +
			"/help - အကူအညီကြည့်ရန်\n" +
			"/batch - ဖိုင်များစုစည်း၍ စိစစ်ရန်\n" +
			"/english - Switch to English\n" +
			"/burmese - မြန်မာဘာသာဖြင့် ဆက်လက်ရန်",
		Help: "🤖 အကူအညီ\n\n" +
			"Commands များ:\n" +
			"/start - Bot ကို စတင်အသုံးပြုရန်\n" +
			"/help - အကူအညီကြည့်ရန်\n" +
			"/batch - ဖိုင်များစုစည်း၍ စိစစ်ရန်\n" +
			"/batch_analyze - ဖိုင်အားလုံးကို စုစည်း၍ စိစစ်ရန်\n" +
			"/batch_clear - လက်ရှိဖိုင်စုကို ရှင်းလင်းရန်\n" +
			"/batch_status - ဖိုင်စု၏ အခြေအနေကို ကြည့်ရန်\n" +
			"/search <query> - အင်တာနက်တွင် အချက်အလက်များကို ရှာဖွေရန်\n" +
			"/english - အင်္ဂလိပ်ဘာသာသို့ ပြောင်းရန်\n" +
			"/burmese - မြန်မာဘာသာသို့ ပြောင်းရန်\n\n" +
			"အသုံးပြုနည်း:\n" +
			"၁။ PDF သို့မဟုတ် Excel ဖိုင်ကို ပို့ပြီး သင့်ဖိုင်အကြောင်း မေးပါ\n" +
			"၂။ သို့မဟုတ် ဖိုင်များစုစည်း၍ စိစစ်ရန်:\n" +
			"   - ပထမ /batch ကို ရိုက်ပါ\n" +
			"   - ဖိုင်များကို ပို့ပါ\n" +
			"   - နောက် /batch_analyze ကို ရိုက်၍ စုစည်းစိစစ်ပါ\n\n" +
			"လက်ခံသော ဖိုင်အမျိုးအစားများ:\n" +
			"• PDF (.pdf)\n" +
			"• Excel (.xls, .xlsx)\n\n" +
			"သင့်ဖိုင်(များ)ကို ပို့ပြီး မေးခွန်းများမေးပါ!",
		Processing:        "📥 စာရွက်စာတမ်းကို စစ်ဆေးနေပါသည်... ခဏစောင့်ပါ။",
		UnsupportedFormat: "❌ PDF သို့မဟုတ် Excel ဖိုင်များကိုသာ ပို့ပေးပါ။",
		ProcessingError:   "❌ ဖိုင်စစ်ဆေးရာတွင် အမှားရှိနေပါသည်။ ထပ်မံကြိုးစားကြည့်ပါ။",
		GeneralError:      "❌ တစ်ခုခုမှားယွင်းနေပါသည်။ နောက်မှ ထပ်စမ်းကြည့်ပါ။",
		Greeting:          "👋 မင်္ဂလာပါ! ကျွန်တော်က Financial Document Assistant ပါ။ PDF သို့မဟုတ် Excel ဖိုင်ပို့ပြီး သင့်ဖိုင်အကြောင်း မေးပါ!",
		SendDocument:      "ကျေးဇူးပြု၍ PDF သို့မဟုတ် Excel ဖိုင်ပို့ပြီး သင့်ဖိုင်အကြောင်း မေးပါ!",
		LanguageChanged:   "🇲🇲 မြန်မာဘာသာသို့ ပြောင်းလဲပြီးပါပြီ!",
	},
}
