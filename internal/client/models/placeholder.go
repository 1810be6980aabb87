package models

import (
	"strconv"
	"strings"
)

// Static roster used before the backend went live. The mock backend serves
// it and the CLI shows it with --sample.

var placeholderCharacters = []Character{
	{ID: "char-1", Name: "강민아", Nickname: "담뫄", AvatarURL: "https://placehold.co/200x200/FFE0B2/ff8e42?text=DM", Level: 265, Job: "아크", Club: "단풍바람", Server: "이노시스"},
	{ID: "char-2", Name: "이서준", Nickname: "바람솔", AvatarURL: "https://placehold.co/200x200/E8F5E9/4CAF50?text=BS", Level: 280, Job: "아델", Club: "단풍바람", Server: "스카니아"},
	{ID: "char-3", Name: "박하늘", Nickname: "하늘빛", AvatarURL: "https://placehold.co/200x200/E3F2FD/2196F3?text=HB", Level: 272, Job: "카인", Club: "단풍바람", Server: "루나"},
	{ID: "char-4", Name: "최유진", Nickname: "별하나", AvatarURL: "https://placehold.co/200x200/F3E5F5/9C27B0?text=BH", Level: 258, Job: "호영", Club: "단풍바람", Server: "크로아"},
	{ID: "char-5", Name: "김단풍", Nickname: "단풍잎", AvatarURL: "https://placehold.co/200x200/FFF3E0/FF9800?text=DJ", Level: 290, Job: "라라", Club: "단풍바람", Server: "이노시스"},
	{ID: "char-6", Name: "정수아", Nickname: "수아링", AvatarURL: "https://placehold.co/200x200/FCE4EC/E91E63?text=SA", Level: 275, Job: "칼리", Club: "단풍바람", Server: "엘리시움"},
	{ID: "char-7", Name: "윤도현", Nickname: "도현이", AvatarURL: "https://placehold.co/200x200/E0F2F1/009688?text=DH", Level: 268, Job: "제로", Club: "단풍바람", Server: "스카니아"},
	{ID: "char-8", Name: "한소희", Nickname: "소히짱", AvatarURL: "https://placehold.co/200x200/FFF9C4/FFC107?text=SH", Level: 283, Job: "키네시스", Club: "단풍바람", Server: "루나"},
	{ID: "char-9", Name: "오태양", Nickname: "태양빛", AvatarURL: "https://placehold.co/200x200/FFCCBC/FF5722?text=TY", Level: 277, Job: "듀얼블레이드", Club: "단풍바람", Server: "이노시스"},
	{ID: "char-10", Name: "윤성현", Nickname: "성현이", AvatarURL: "https://placehold.co/200x200/F8BBD0/C2185B?text=YH", Level: 295, Job: "비숍", Club: "단풍바람", Server: "스카니아"},
	{ID: "char-11", Name: "최미나", Nickname: "미나짱", AvatarURL: "https://placehold.co/200x200/E1BEE7/7B1FA2?text=MN", Level: 260, Job: "윈드브레이커", Club: "단풍바람", Server: "루나"},
	{ID: "char-12", Name: "강철수", Nickname: "철수맨", AvatarURL: "https://placehold.co/200x200/D1C4E9/512DA8?text=CS", Level: 270, Job: "다크나이트", Club: "단풍바람", Server: "엘리시움"},
	{ID: "char-13", Name: "이영희", Nickname: "영희공주", AvatarURL: "https://placehold.co/200x200/C5CAE9/303F9F?text=YH", Level: 268, Job: "비스트테이머", Club: "단풍바람", Server: "크로아"},
	{ID: "char-14", Name: "김민수", Nickname: "민수형", AvatarURL: "https://placehold.co/200x200/BBDEFB/1976D2?text=MS", Level: 285, Job: "나이트로드", Club: "단풍바람", Server: "베라"},
}

var placeholderSettlements = []Settlement{
	{ID: "msg-1", CharacterID: "char-1", Title: "메생결산 내용(제목으로 사용)", Description: "길드원들과 함께한 보스레이드 최초 클리어! 모두가 힘을 합쳐 드디어 데미안을 처치했습니다. 정말 감격스러운 순간이었어요.", ImageURL: "https://placehold.co/400x300/FFE0B2/ff8e42?text=BOSS+CLEAR", AcquiredAt: "2026-08-30"},
	{ID: "msg-2", CharacterID: "char-1", Title: "길어도 두 줄로 안 내려가요", Description: "레벨 265 달성 기념! 오랜 시간 동안 노력한 결과가 드디어 결실을 맺었습니다.", ImageURL: "https://placehold.co/400x300/E8F5E9/4CAF50?text=LV+265", AcquiredAt: "2026-08-29"},
	{ID: "msg-3", CharacterID: "char-1", Title: "내용이 길면 말줄임표 표시해 주세요 이렇게 길어지면 잘립니다", Description: "단풍바람 길드 창립 1주년을 맞이하여 특별 이벤트를 진행했습니다. 모든 길드원이 참여하여 즐거운 시간을 보냈어요.", ImageURL: "https://placehold.co/400x300/E3F2FD/2196F3?text=1ST+ANNIVERSARY", AcquiredAt: "2026-08-28"},
	{ID: "msg-4", CharacterID: "char-1", Title: "길면 말줄임표 표시해 주세용", Description: "첫 번째 무릉도장 100층 달성! 꾸준한 연습의 결과입니다.", ImageURL: "https://placehold.co/400x300/F3E5F5/9C27B0?text=MULUNG+100", AcquiredAt: "2026-08-27"},
	{ID: "msg-5", CharacterID: "char-1", Title: "살다살다 데미안도 잡아보네 내가 이걸 해내다니", Description: "살다살다 데미안도 잡아보네 내용이 길면 두 줄로 내려갑니다(반응형 textbox입니다). 정말 오래 걸렸지만 결국 해냈어요!", ImageURL: "https://placehold.co/400x300/FFCCBC/FF5722?text=DEMIAN", AcquiredAt: "2026-08-01"},
	{ID: "msg-6", CharacterID: "char-1", Title: "유니온 8000 달성! 전투력 상승", Description: "드디어 유니온 8000을 찍었습니다. 매일매일 조금씩 키우던 부캐들이 모여 큰 힘이 되었네요.", ImageURL: "https://placehold.co/400x300/E1BEE7/8E24AA?text=UNION+8000", AcquiredAt: "2026-07-15"},
	{ID: "msg-7", CharacterID: "char-1", Title: "마라벨 1기 풀세트 완성", Description: "꿈에 그리던 마스터 라벨 1기 풀세트를 완성했습니다. 코디의 완성은 역시 마라벨!", ImageURL: "https://placehold.co/400x300/BBDEFB/1976D2?text=MASTER+LABEL", AcquiredAt: "2026-06-20"},
	{ID: "msg-8", CharacterID: "char-1", Title: "제네시스 무기 해방 퀘스트 완료", Description: "검은 마법사를 격파하고 드디어 제네시스 무기를 해방했습니다. 이제 진정한 해방 유저!", ImageURL: "https://placehold.co/400x300/FFCDD2/D32F2F?text=GENESIS+WEAPON", AcquiredAt: "2026-05-10"},
	{ID: "msg-9", CharacterID: "char-1", Title: "시드 링 4레벨 획득 (리레4)", Description: "더 시드 50층 등반 보상으로 리스트레인트 링 4레벨이 떴습니다! 믿기지 않는 행운이네요.", ImageURL: "https://placehold.co/400x300/C8E6C9/388E3C?text=ROR+4", AcquiredAt: "2026-04-05"},
	{ID: "msg-10", CharacterID: "char-1", Title: "몬스터 컬렉션 1000마리 등록", Description: "메이플 월드를 누비며 몬스터 컬렉션 1000마리를 등록했습니다. 탐험의 증표!", ImageURL: "https://placehold.co/400x300/FFECB3/FFA000?text=MONSTER+COL", AcquiredAt: "2026-03-22"},
}

var placeholderComments = []Comment{
	{ID: "talk-1", UserID: int64Ptr(101), Author: "단풍사랑", AuthorAvatar: "https://placehold.co/40x40/FFE0B2/ff8e42?text=DS", Content: "안녕하세요! 단풍바람 13기 메생결산 축하합니다!", CreatedAt: "26. 01. 22. 23:11"},
	{ID: "talk-2", UserID: int64Ptr(102), Author: "메이플러버", AuthorAvatar: "https://placehold.co/40x40/E8F5E9/4CAF50?text=ML", Content: "모두 수고하셨습니다~ 다음 기수도 화이팅!", CreatedAt: "26. 01. 22. 22:45"},
	{ID: "talk-3", UserID: int64Ptr(103), Author: "바람의나라", AuthorAvatar: "https://placehold.co/40x40/E3F2FD/2196F3?text=BN", Content: "메생결산 정말 잘 만들었네요. 디자인이 너무 예뻐요!", CreatedAt: "26. 01. 22. 21:30"},
	{ID: "talk-4", UserID: int64Ptr(104), Author: "길드장최고", AuthorAvatar: "https://placehold.co/40x40/F3E5F5/9C27B0?text=GJ", Content: "우리 길드원들 최고! 다 같이 힘내서 이번 시즌도 잘 마무리합시다. 앞으로도 함께 즐거운 메이플 생활 해요~", CreatedAt: "26. 01. 21. 18:20"},
	{ID: "talk-5", UserID: int64Ptr(105), Author: "초보모험가", AuthorAvatar: "https://placehold.co/40x40/FFF9C4/FFC107?text=CB", Content: "저도 다음에 메생결산 받고 싶어요!", CreatedAt: "26. 01. 21. 15:05"},
	{ID: "talk-6", UserID: int64Ptr(106), Author: "어둠의기사", AuthorAvatar: "https://placehold.co/40x40/FFCCBC/FF5722?text=DK", Content: "멋진 결산이네요 ㅎㅎ", CreatedAt: "26. 01. 20. 09:33"},
	{ID: "talk-7", UserID: int64Ptr(107), Author: "별빛수호자", AuthorAvatar: "https://placehold.co/40x40/FCE4EC/E91E63?text=BS", Content: "와 진짜 대단하다... 부럽!", CreatedAt: "26. 01. 19. 20:12"},
	{ID: "talk-8", UserID: int64Ptr(108), Author: "나무늘보", AuthorAvatar: "https://placehold.co/40x40/E0F2F1/009688?text=NB", Content: "다음 기수에는 저도 꼭 참여할게요!", CreatedAt: "26. 01. 19. 14:40"},
}

func int64Ptr(v int64) *int64 { return &v }

// PlaceholderCharacters returns a copy of the static roster.
func PlaceholderCharacters() []Character {
	return append([]Character(nil), placeholderCharacters...)
}

// PlaceholderCharacter looks a roster entry up by id.
func PlaceholderCharacter(id string) (Character, bool) {
	for _, c := range placeholderCharacters {
		if c.ID == id {
			return c, true
		}
	}
	return Character{}, false
}

// PlaceholderSettlements returns the static cards of one character.
func PlaceholderSettlements(characterID string) []Settlement {
	var out []Settlement
	for _, s := range placeholderSettlements {
		if s.CharacterID == characterID {
			out = append(out, s)
		}
	}
	return out
}

// PlaceholderSettlement looks a card up by id.
func PlaceholderSettlement(id string) (Settlement, bool) {
	for _, s := range placeholderSettlements {
		if s.ID == id {
			return s, true
		}
	}
	return Settlement{}, false
}

// PlaceholderComments returns a copy of the static guestbook.
func PlaceholderComments() []Comment {
	return append([]Comment(nil), placeholderComments...)
}

// PlaceholderNumber extracts the numeric part of a placeholder id
// ("char-7" -> 7). The mock backend uses it as the wire id.
func PlaceholderNumber(id string) (int64, bool) {
	i := strings.LastIndexByte(id, '-')
	n, err := strconv.ParseInt(id[i+1:], 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
