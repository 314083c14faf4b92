package handlers

const (
	textStart = "IA-1 Bot — приёмник отчётов.\nКоманды: /report, /mission, /progress, /setreminder"

	textAskReport      = "Пришли текст отчёта (мин. 10 символов):"
	textReportTooShort = "Слишком коротко. Опиши подробнее."
	textReportSaved    = "Отчёт сохранён."
	textReportFailed   = "Не удалось сохранить отчёт, попробуй ещё раз."
	textReportCanceled = "Отправка отчёта отменена."

	textSetReminderUsage = "Использование: /setreminder HH:MM"
	textBadTime          = "Неверный формат времени. Пример: /setreminder 21:00"
	textReminderFailed   = "Не удалось сохранить напоминание, попробуй ещё раз."

	textProgressFailed = "Не удалось прочитать статистику, попробуй позже."
)
