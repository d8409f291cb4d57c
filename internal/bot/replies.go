package bot

// Static reply texts. The menu mirrors what users see on first contact;
// wording stays in sync with the keywords in command.go.
const (
	menuReply = `📋 *MENU DE COMANDOS*

1️⃣ Registrar gasto:
   "Gastei [valor] reais em [descrição]"
   Exemplo: Gastei 50 reais no mercado

2️⃣ Ver relatório:
   "Quanto gastei hoje?"
   "Quanto gastei na semana?"
   "Quanto gastei no mês?"

3️⃣ Ajuda:
   "Ajuda"`

	helpReply = `ℹ️ *COMO FUNCIONA*

Envie uma mensagem (texto ou áudio) dizendo quanto gastou:
   "Gastei 12,50 no mercado"

O valor é reconhecido automaticamente e o gasto entra em uma
categoria: Alimentação, Transporte, Moradia, Saúde, Lazer ou Outros.

Para ver um resumo, pergunte "quanto gastei" — hoje, na semana
ou no mês. Digite "menu" para ver os comandos.`

	unrecognizedReply = `❓ Comando não reconhecido. Digite 'menu' para ver as opções.`

	storageFailureReply = `⚠️ Não consegui acessar seus registros agora. Tente novamente em instantes.`

	// confirmationFmt takes the formatted amount, the category label and
	// the original message text.
	confirmationFmt = "✅ Gasto registrado: R$ %s em %s\n📝 %s"
)
