// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package i18n

// Strings is the full UI string table for one language.
type Strings struct {
	NewChat     string
	Settings    string
	Search      string
	TypeMessage string
	Rename      string
	Delete      string

	ClearAllChats string
	ClearConfirm  string
	DeleteConfirm string

	Thinking string
	Error    string

	InterfaceSettings string
	MessageDisplay    string
	StorageSettings   string
	FontSize          string
	MessageSpacing    string
	MaxMessages       string
	InterfaceLanguage string
	TimeFormat        string
	TimeFormat12      string
	TimeFormat24      string

	// Font size labels
	Tiny       string
	ExtraSmall string
	Small      string
	Medium     string
	Large      string
	ExtraLarge string
	Huge       string

	// Spacing labels
	ExtraCompact  string
	Compact       string
	Normal        string
	Relaxed       string
	Spacious      string
	ExtraSpacious string
}

// T returns the string table for a language, falling back to English for
// anything unknown.
func T(lang Language) Strings {
	if s, ok := tables[lang]; ok {
		return s
	}
	return tables[LangEnglish]
}

var tables = map[Language]Strings{
	LangEnglish: {
		NewChat:           "New Chat",
		Settings:          "Settings",
		Search:            "Search in chat...",
		TypeMessage:       "Type your message here...",
		Rename:            "Rename",
		Delete:            "Delete",
		ClearAllChats:     "Clear All Chats",
		ClearConfirm:      "Are you sure you want to delete all chats? This action cannot be undone.",
		DeleteConfirm:     "Are you sure you want to delete this chat? This action cannot be undone.",
		Thinking:          "Thinking",
		Error:             "An error occurred: ",
		InterfaceSettings: "Interface Settings",
		MessageDisplay:    "Message Display",
		StorageSettings:   "Storage Settings",
		FontSize:          "Font Size",
		MessageSpacing:    "Message Spacing",
		MaxMessages:       "Maximum Messages in History",
		InterfaceLanguage: "Interface Language",
		TimeFormat:        "Time Format",
		TimeFormat12:      "12:00 PM",
		TimeFormat24:      "13:00",
		Tiny:              "Tiny",
		ExtraSmall:        "Extra Small",
		Small:             "Small",
		Medium:            "Medium",
		Large:             "Large",
		ExtraLarge:        "Extra Large",
		Huge:              "Huge",
		ExtraCompact:      "Extra Compact",
		Compact:           "Compact",
		Normal:            "Normal",
		Relaxed:           "Relaxed",
		Spacious:          "Spacious",
		ExtraSpacious:     "Extra Spacious",
	},
	LangGerman: {
		NewChat:           "Neuer Chat",
		Settings:          "Einstellungen",
		Search:            "Chat durchsuchen...",
		TypeMessage:       "Nachricht hier eingeben...",
		Rename:            "Umbenennen",
		Delete:            "Löschen",
		ClearAllChats:     "Alle Chats löschen",
		ClearConfirm:      "Möchten Sie wirklich alle Chats löschen? Diese Aktion kann nicht rückgängig gemacht werden.",
		DeleteConfirm:     "Möchten Sie diesen Chat wirklich löschen? Diese Aktion kann nicht rückgängig gemacht werden.",
		Thinking:          "Denkt nach",
		Error:             "Ein Fehler ist aufgetreten: ",
		InterfaceSettings: "Oberflächeneinstellungen",
		MessageDisplay:    "Nachrichtenanzeige",
		StorageSettings:   "Speichereinstellungen",
		FontSize:          "Schriftgröße",
		MessageSpacing:    "Nachrichtenabstand",
		MaxMessages:       "Maximale Nachrichten im Verlauf",
		InterfaceLanguage: "Oberflächensprache",
		TimeFormat:        "Zeitformat",
		TimeFormat12:      "12:00 PM",
		TimeFormat24:      "13:00",
		Tiny:              "Winzig",
		ExtraSmall:        "Sehr Klein",
		Small:             "Klein",
		Medium:            "Mittel",
		Large:             "Groß",
		ExtraLarge:        "Sehr Groß",
		Huge:              "Riesig",
		ExtraCompact:      "Sehr Kompakt",
		Compact:           "Kompakt",
		Normal:            "Normal",
		Relaxed:           "Entspannt",
		Spacious:          "Geräumig",
		ExtraSpacious:     "Sehr Geräumig",
	},
	LangChinese: {
		NewChat:           "新对话",
		Settings:          "设置",
		Search:            "搜索对话...",
		TypeMessage:       "在此输入消息...",
		Rename:            "重命名",
		Delete:            "删除",
		ClearAllChats:     "清除所有对话",
		ClearConfirm:      "确定要删除所有对话吗？此操作无法撤消。",
		DeleteConfirm:     "确定要删除此对话吗？此操作无法撤消。",
		Thinking:          "思考中",
		Error:             "发生错误：",
		InterfaceSettings: "界面设置",
		MessageDisplay:    "消息显示",
		StorageSettings:   "存储设置",
		FontSize:          "字体大小",
		MessageSpacing:    "消息间距",
		MaxMessages:       "历史消息最大数量",
		InterfaceLanguage: "界面语言",
		TimeFormat:        "时间格式",
		TimeFormat12:      "上午 12:00",
		TimeFormat24:      "13:00",
		Tiny:              "极小",
		ExtraSmall:        "特小",
		Small:             "小",
		Medium:            "中",
		Large:             "大",
		ExtraLarge:        "特大",
		Huge:              "极大",
		ExtraCompact:      "极紧凑",
		Compact:           "紧凑",
		Normal:            "正常",
		Relaxed:           "宽松",
		Spacious:          "宽敞",
		ExtraSpacious:     "特宽敞",
	},
	LangHindi: {
		NewChat:           "नई चैट",
		Settings:          "सेटिंग्स",
		Search:            "चैट में खोजें...",
		TypeMessage:       "यहां अपना संदेश लिखें...",
		Rename:            "नाम बदलें",
		Delete:            "हटाएं",
		ClearAllChats:     "सभी चैट साफ़ करें",
		ClearConfirm:      "क्या आप वाकई सभी चैट हटाना चाहते हैं? यह क्रिया वापस नहीं ली जा सकती।",
		DeleteConfirm:     "क्या आप वाकई यह चैट हटाना चाहते हैं? यह क्रिया वापस नहीं ली जा सकती।",
		Thinking:          "सोच रहा हूं",
		Error:             "एक त्रुटि हुई: ",
		InterfaceSettings: "इंटरफ़ेस सेटिंग्स",
		MessageDisplay:    "संदेश प्रदर्शन",
		StorageSettings:   "स्टोरेज सेटिंग्स",
		FontSize:          "फ़ॉन्ट आकार",
		MessageSpacing:    "संदेश अंतर",
		MaxMessages:       "अधिकतम संदेश इतिहास",
		InterfaceLanguage: "इंटरफ़ेस भाषा",
		TimeFormat:        "समय प्रारूप",
		TimeFormat12:      "12:00 पूर्वाह्न",
		TimeFormat24:      "13:00",
		Tiny:              "बहुत छोटा",
		ExtraSmall:        "अति छोटा",
		Small:             "छोटा",
		Medium:            "मध्यम",
		Large:             "बड़ा",
		ExtraLarge:        "बहुत बड़ा",
		Huge:              "विशाल",
		ExtraCompact:      "अति संकुचित",
		Compact:           "संकुचित",
		Normal:            "सामान्य",
		Relaxed:           "विस्तृत",
		Spacious:          "विशाल",
		ExtraSpacious:     "अति विशाल",
	},
	LangSpanish: {
		NewChat:           "Nueva Conversación",
		Settings:          "Configuración",
		Search:            "Buscar en el chat...",
		TypeMessage:       "Escribe tu mensaje aquí...",
		Rename:            "Renombrar",
		Delete:            "Eliminar",
		ClearAllChats:     "Borrar Todos los Chats",
		ClearConfirm:      "¿Estás seguro de que quieres eliminar todos los chats? Esta acción no se puede deshacer.",
		DeleteConfirm:     "¿Estás seguro de que quieres eliminar este chat? Esta acción no se puede deshacer.",
		Thinking:          "Pensando",
		Error:             "Ocurrió un error: ",
		InterfaceSettings: "Configuración de Interfaz",
		MessageDisplay:    "Visualización de Mensajes",
		StorageSettings:   "Configuración de Almacenamiento",
		FontSize:          "Tamaño de Fuente",
		MessageSpacing:    "Espaciado de Mensajes",
		MaxMessages:       "Máximo de Mensajes en Historial",
		InterfaceLanguage: "Idioma de Interfaz",
		TimeFormat:        "Formato de Hora",
		TimeFormat12:      "12:00 PM",
		TimeFormat24:      "13:00",
		Tiny:              "Diminuto",
		ExtraSmall:        "Muy Pequeño",
		Small:             "Pequeño",
		Medium:            "Mediano",
		Large:             "Grande",
		ExtraLarge:        "Muy Grande",
		Huge:              "Enorme",
		ExtraCompact:      "Muy Compacto",
		Compact:           "Compacto",
		Normal:            "Normal",
		Relaxed:           "Relajado",
		Spacious:          "Espacioso",
		ExtraSpacious:     "Muy Espacioso",
	},
	LangArabic: {
		NewChat:           "محادثة جديدة",
		Settings:          "الإعدادات",
		Search:            "البحث في المحادثة...",
		TypeMessage:       "اكتب رسالتك هنا...",
		Rename:            "إعادة تسمية",
		Delete:            "حذف",
		ClearAllChats:     "مسح جميع المحادثات",
		ClearConfirm:      "هل أنت متأكد من حذف جميع المحادثات؟ لا يمكن التراجع عن هذا الإجراء.",
		DeleteConfirm:     "هل أنت متأكد من حذف هذه المحادثة؟ لا يمكن التراجع عن هذا الإجراء.",
		Thinking:          "يفكر",
		Error:             "حدث خطأ: ",
		InterfaceSettings: "إعدادات الواجهة",
		MessageDisplay:    "عرض الرسائل",
		StorageSettings:   "إعدادات التخزين",
		FontSize:          "حجم الخط",
		MessageSpacing:    "تباعد الرسائل",
		MaxMessages:       "الحد الأقصى للرسائل في السجل",
		InterfaceLanguage: "لغة الواجهة",
		TimeFormat:        "تنسيق الوقت",
		TimeFormat12:      "12:00 ص",
		TimeFormat24:      "13:00",
		Tiny:              "متناهي الصغر",
		ExtraSmall:        "صغير جداً",
		Small:             "صغير",
		Medium:            "متوسط",
		Large:             "كبير",
		ExtraLarge:        "كبير جداً",
		Huge:              "ضخم",
		ExtraCompact:      "متراص جداً",
		Compact:           "متراص",
		Normal:            "عادي",
		Relaxed:           "متباعد",
		Spacious:          "واسع",
		ExtraSpacious:     "واسع جداً",
	},
	LangTurkish: {
		NewChat:           "Yeni Sohbet",
		Settings:          "Ayarlar",
		Search:            "Sohbette ara...",
		TypeMessage:       "Mesajınızı buraya yazın...",
		Rename:            "Yeniden Adlandır",
		Delete:            "Sil",
		ClearAllChats:     "Tüm Sohbetleri Sil",
		ClearConfirm:      "Tüm sohbetleri silmek istediğinizden emin misiniz? Bu işlem geri alınamaz.",
		DeleteConfirm:     "Bu sohbeti silmek istediğinizden emin misiniz? Bu işlem geri alınamaz.",
		Thinking:          "Düşünüyor",
		Error:             "Bir hata oluştu: ",
		InterfaceSettings: "Arayüz Ayarları",
		MessageDisplay:    "Mesaj Görünümü",
		StorageSettings:   "Depolama Ayarları",
		FontSize:          "Yazı Boyutu",
		MessageSpacing:    "Mesaj Aralığı",
		MaxMessages:       "Geçmişteki Maksimum Mesaj Sayısı",
		InterfaceLanguage: "Arayüz Dili",
		TimeFormat:        "Zaman Biçimi",
		TimeFormat12:      "12:00 ÖÖ",
		TimeFormat24:      "13:00",
		Tiny:              "Çok Küçük",
		ExtraSmall:        "Ekstra Küçük",
		Small:             "Küçük",
		Medium:            "Orta",
		Large:             "Büyük",
		ExtraLarge:        "Ekstra Büyük",
		Huge:              "Çok Büyük",
		ExtraCompact:      "Çok Sıkışık",
		Compact:           "Sıkışık",
		Normal:            "Normal",
		Relaxed:           "Geniş",
		Spacious:          "Çok Geniş",
		ExtraSpacious:     "Ekstra Geniş",
	},
	LangFrench: {
		NewChat:           "Nouvelle Conversation",
		Settings:          "Paramètres",
		Search:            "Rechercher dans la conversation...",
		TypeMessage:       "Écrivez votre message ici...",
		Rename:            "Renommer",
		Delete:            "Supprimer",
		ClearAllChats:     "Effacer Toutes les Conversations",
		ClearConfirm:      "Êtes-vous sûr de vouloir supprimer toutes les conversations ? Cette action est irréversible.",
		DeleteConfirm:     "Êtes-vous sûr de vouloir supprimer cette conversation ? Cette action est irréversible.",
		Thinking:          "Réflexion",
		Error:             "Une erreur est survenue : ",
		InterfaceSettings: "Paramètres d'Interface",
		MessageDisplay:    "Affichage des Messages",
		StorageSettings:   "Paramètres de Stockage",
		FontSize:          "Taille de Police",
		MessageSpacing:    "Espacement des Messages",
		MaxMessages:       "Maximum de Messages dans l'Historique",
		InterfaceLanguage: "Langue d'Interface",
		TimeFormat:        "Format de l'Heure",
		TimeFormat12:      "12:00 PM",
		TimeFormat24:      "13:00",
		Tiny:              "Minuscule",
		ExtraSmall:        "Très Petit",
		Small:             "Petit",
		Medium:            "Moyen",
		Large:             "Grand",
		ExtraLarge:        "Très Grand",
		Huge:              "Énorme",
		ExtraCompact:      "Très Compact",
		Compact:           "Compact",
		Normal:            "Normal",
		Relaxed:           "Détendu",
		Spacious:          "Spacieux",
		ExtraSpacious:     "Très Spacieux",
	},
	LangRussian: {
		NewChat:           "Новый Чат",
		Settings:          "Настройки",
		Search:            "Поиск в чате...",
		TypeMessage:       "Введите ваше сообщение здесь...",
		Rename:            "Переименовать",
		Delete:            "Удалить",
		ClearAllChats:     "Очистить Все Чаты",
		ClearConfirm:      "Вы уверены, что хотите удалить все чаты? Это действие нельзя отменить.",
		DeleteConfirm:     "Вы уверены, что хотите удалить этот чат? Это действие нельзя отменить.",
		Thinking:          "Думаю",
		Error:             "Произошла ошибка: ",
		InterfaceSettings: "Настройки Интерфейса",
		MessageDisplay:    "Отображение Сообщений",
		StorageSettings:   "Настройки Хранения",
		FontSize:          "Размер Шрифта",
		MessageSpacing:    "Интервал Сообщений",
		MaxMessages:       "Максимум Сообщений в Истории",
		InterfaceLanguage: "Язык Интерфейса",
		TimeFormat:        "Формат Времени",
		TimeFormat12:      "12:00 PM",
		TimeFormat24:      "13:00",
		Tiny:              "Крошечный",
		ExtraSmall:        "Очень Маленький",
		Small:             "Маленький",
		Medium:            "Средний",
		Large:             "Большой",
		ExtraLarge:        "Очень Большой",
		Huge:              "Огромный",
		ExtraCompact:      "Очень Компактный",
		Compact:           "Компактный",
		Normal:            "Обычный",
		Relaxed:           "Свободный",
		Spacious:          "Просторный",
		ExtraSpacious:     "Очень Просторный",
	},
}
