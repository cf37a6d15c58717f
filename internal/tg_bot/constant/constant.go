package constant

// Тексты кнопок главного меню.
const (
	BUTTON_TEXT_CURRENCY_MENU = "Уровень валют восточной Европы"
	BUTTON_TEXT_TICKET        = "Заявка в УК"
	BUTTON_TEXT_FREEFORM      = "Другой вопрос"
	BUTTON_TEXT_BACK          = "↩️ Назад"
)

// Тексты кнопок валютного меню. Порядок совпадает с порядком кнопок.
const (
	BUTTON_TEXT_EUR = "🇪🇺 Евро"
	BUTTON_TEXT_BYN = "🇧🇾 Белорусский рубль"
	BUTTON_TEXT_UAH = "🇺🇦 Украинская гривна"
	BUTTON_TEXT_MDL = "🇲🇩 Молдавский лей"
	BUTTON_TEXT_RON = "🇷🇴 Румынский лей"
	BUTTON_TEXT_BGN = "🇧🇬 Болгарский лев"
	BUTTON_TEXT_HUF = "🇭🇺 Венгерский форинт"
	BUTTON_TEXT_CZK = "🇨🇿 Чешская крона"
	BUTTON_TEXT_PLN = "🇵🇱 Польский злотый"
)

// CurrencyButtons maps a currency-menu button phrase to its currency code.
var CurrencyButtons = map[string]string{
	BUTTON_TEXT_EUR: "EUR",
	BUTTON_TEXT_BYN: "BYN",
	BUTTON_TEXT_UAH: "UAH",
	BUTTON_TEXT_MDL: "MDL",
	BUTTON_TEXT_RON: "RON",
	BUTTON_TEXT_BGN: "BGN",
	BUTTON_TEXT_HUF: "HUF",
	BUTTON_TEXT_CZK: "CZK",
	BUTTON_TEXT_PLN: "PLN",
}

// CurrencyButtonOrder keeps the submenu rows in the fixed button order.
var CurrencyButtonOrder = []string{
	BUTTON_TEXT_EUR, BUTTON_TEXT_BYN, BUTTON_TEXT_UAH,
	BUTTON_TEXT_MDL, BUTTON_TEXT_RON, BUTTON_TEXT_BGN,
	BUTTON_TEXT_HUF, BUTTON_TEXT_CZK, BUTTON_TEXT_PLN,
}

// Командные фразы, сравниваются без учёта регистра.
var (
	GreetingPhrases     = []string{"привет", "старт", "/start"}
	CurrencyMenuPhrases = []string{"уровень валют восточной европы", "уровень валют", "валюты"}
	BackPhrases         = []string{"↩️ назад", "назад"}
	FreeformPhrases     = []string{"другой вопрос", "другое"}
	TicketPhrases       = []string{"заявка в ук"}
)

// Тексты ответов бота.
const (
	MSG_GREETING        = "Привет!😄\nВыбери что тебя интересует👇"
	MSG_MAIN_MENU       = "Доступные действия:"
	MSG_CURRENCY_MENU   = "Выберите интересующую валюту"
	MSG_FREEFORM_HELP   = "Могу подсказать:\nСколько время🕰\nКакая погода в Перми и других городах🌤\nА так же рассказать восточноевропейский анекдот🤡🇷🇸"
	MSG_TICKET_PROMPT   = "Пожалуйста, напишите ваше обращение для управляющей компании в чат"
	MSG_CANT_ANSWER     = "Простите, на данный вопрос ответить я не могу 😓"
	MSG_RATE_API_DOWN   = "Простите, не удалось получить данные по валютам, попробуйте позже 😓"
	MSG_TICKET_FAILED   = "Простите, не удалось обработать обращение, попробуйте ещё раз 😓"
	MSG_WEATHER_NO_LOC  = "Простите, не понял Ваш вопрос😓"
	MSG_WEATHER_NO_CITY = "Простите, такого места я не знаю 😳"
	MSG_WEATHER_FAILED  = "Простите, не удалось узнать погоду, попробуйте позже 😓"
	MSG_JOKE_APOLOGY    = "Анектода сегодня не будет, простите (вероятно подписка на API  санекдотами истекла)"
)

// Банки фраз для нечёткого сопоставления вопросов в свободной форме.
var (
	TimeQuestions = []string{
		"сколько время",
		"сколько времени",
		"который час",
		"подскажи время",
		"сколько сейчас времени",
	}
	WeatherLocaleQuestions = []string{
		"какая погода",
		"какая сейчас погода",
		"какая погода в перми",
		"что с погодой",
		"какая погода за окном",
	}
	WeatherQuestions = []string{
		"какая погода в городе",
		"какая погода в",
		"что с погодой в городе",
		"расскажи погоду в городе",
	}
	JokeQuestions = []string{
		"расскажи анекдот",
		"расскажи шутку",
		"пошути",
		"хочу анекдот",
		"развесели меня",
	}
)
