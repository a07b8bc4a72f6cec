package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle            = "app_title"
	KeyDownload            = "download"
	KeySettings            = "settings"
	KeyFile                = "file"
	KeyLanguage            = "language"
	KeyDownloadDirectory   = "download_directory"
	KeySelectDirectory     = "select_directory"
	KeyNoDirectorySelected = "no_directory_selected"
	KeyOpenFolder          = "open_folder"
	KeyURLLabel            = "url_label"
	KeyEnterURL            = "enter_url"
	KeyVideoCheckbox       = "video_checkbox"
	KeyDownloaderPath      = "downloader_path"
	KeyIconPath            = "icon_path"
	KeyTheme               = "theme"
	KeyRememberDirectory   = "remember_directory"
	KeySave                = "save"
	KeyCancel              = "cancel"
	KeyBrowse              = "browse"
	KeySettingsSaved       = "settings_saved"
	KeyDownloading         = "downloading"
	KeyDownloadComplete    = "download_complete"
	KeyDownloadFailed      = "download_failed"
	KeyLaunchFailed        = "launch_failed"
	KeyNoDownloadDirectory = "no_download_directory"
	KeyPleaseEnterURL      = "please_enter_url"
	KeyErrorOpeningFolder  = "error_opening_folder"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations.
// KeyDownloadFailed takes the captured error output, KeyLaunchFailed takes
// the downloader name and the start error.
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:            "YouTube Alarm",
		KeyDownload:            "Download",
		KeySettings:            "Settings",
		KeyFile:                "File",
		KeyLanguage:            "Language",
		KeyDownloadDirectory:   "Download Directory:",
		KeySelectDirectory:     "Select Download Directory",
		KeyNoDirectorySelected: "No directory selected",
		KeyOpenFolder:          "Open Folder",
		KeyURLLabel:            "YouTube URL:",
		KeyEnterURL:            "Enter YouTube video URL",
		KeyVideoCheckbox:       "Download Video (uncheck for audio only)",
		KeyDownloaderPath:      "Downloader Executable",
		KeyIconPath:            "Window Icon",
		KeyTheme:               "Theme",
		KeyRememberDirectory:   "Remember last download directory",
		KeySave:                "Save",
		KeyCancel:              "Cancel",
		KeyBrowse:              "Browse",
		KeySettingsSaved:       "Settings saved successfully!",
		KeyDownloading:         "Downloading...",
		KeyDownloadComplete:    "Download complete.",
		KeyDownloadFailed:      "Download failed: %s",
		KeyLaunchFailed:        "Failed to execute %s command: %v",
		KeyNoDownloadDirectory: "No download directory selected.",
		KeyPleaseEnterURL:      "Please enter a YouTube URL.",
		KeyErrorOpeningFolder:  "Error opening folder",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:            "YouTube Будильник",
		KeyDownload:            "Скачать",
		KeySettings:            "Настройки",
		KeyFile:                "Файл",
		KeyLanguage:            "Язык",
		KeyDownloadDirectory:   "Папка загрузки:",
		KeySelectDirectory:     "Выбрать папку загрузки",
		KeyNoDirectorySelected: "Папка не выбрана",
		KeyOpenFolder:          "Открыть папку",
		KeyURLLabel:            "URL YouTube:",
		KeyEnterURL:            "Введите URL видео YouTube",
		KeyVideoCheckbox:       "Скачать видео (снимите для только аудио)",
		KeyDownloaderPath:      "Программа загрузки",
		KeyIconPath:            "Иконка окна",
		KeyTheme:               "Тема",
		KeyRememberDirectory:   "Запоминать последнюю папку",
		KeySave:                "Сохранить",
		KeyCancel:              "Отмена",
		KeyBrowse:              "Обзор",
		KeySettingsSaved:       "Настройки успешно сохранены!",
		KeyDownloading:         "Загрузка...",
		KeyDownloadComplete:    "Загрузка завершена.",
		KeyDownloadFailed:      "Ошибка загрузки: %s",
		KeyLaunchFailed:        "Не удалось запустить %s: %v",
		KeyNoDownloadDirectory: "Папка загрузки не выбрана.",
		KeyPleaseEnterURL:      "Пожалуйста, введите URL YouTube.",
		KeyErrorOpeningFolder:  "Ошибка открытия папки",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:            "YouTube Alarm",
		KeyDownload:            "Baixar",
		KeySettings:            "Configurações",
		KeyFile:                "Arquivo",
		KeyLanguage:            "Idioma",
		KeyDownloadDirectory:   "Diretório de Download:",
		KeySelectDirectory:     "Selecionar Diretório",
		KeyNoDirectorySelected: "Nenhum diretório selecionado",
		KeyOpenFolder:          "Abrir Pasta",
		KeyURLLabel:            "URL do YouTube:",
		KeyEnterURL:            "Digite a URL do vídeo do YouTube",
		KeyVideoCheckbox:       "Baixar Vídeo (desmarque para apenas áudio)",
		KeyDownloaderPath:      "Executável do Downloader",
		KeyIconPath:            "Ícone da Janela",
		KeyTheme:               "Tema",
		KeyRememberDirectory:   "Lembrar o último diretório",
		KeySave:                "Salvar",
		KeyCancel:              "Cancelar",
		KeyBrowse:              "Navegar",
		KeySettingsSaved:       "Configurações salvas com sucesso!",
		KeyDownloading:         "Baixando...",
		KeyDownloadComplete:    "Download concluído.",
		KeyDownloadFailed:      "Falha no download: %s",
		KeyLaunchFailed:        "Falha ao executar o comando %s: %v",
		KeyNoDownloadDirectory: "Nenhum diretório de download selecionado.",
		KeyPleaseEnterURL:      "Por favor, digite uma URL do YouTube.",
		KeyErrorOpeningFolder:  "Erro ao abrir pasta",
	}
}
